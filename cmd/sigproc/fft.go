package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/pipeline"
	"github.com/cwbudde/algo-sigproc/dsp/spectrum"
	"github.com/cwbudde/algo-sigproc/dsp/transform"
	"github.com/cwbudde/algo-sigproc/dsp/window"
)

func newFFTCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fft [flags] [--] [sample ...]",
		Short: "Print the spectrum of a real signal",
		Long: `Windows the samples, computes the forward transform and prints one row
per bin. Only bins up to Nyquist are printed unless --full is set.
Put -- before samples on the command line when any of them is negative.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := readSamples(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			in, err := buffer.FromSlice(samples, v.GetFloat64("sample-rate"))
			if err != nil {
				return err
			}

			wt, err := window.ParseType(v.GetString("window"))
			if err != nil {
				return err
			}
			backend, err := transform.ParseBackend(v.GetString("backend"))
			if err != nil {
				return err
			}
			strategy, err := transform.ParseStrategy(v.GetString("strategy"))
			if err != nil {
				return err
			}
			engine := transform.New(transform.WithBackend(backend), transform.WithArbitraryLength(strategy))

			out, err := pipeline.NewBuilder().WindowType(wt).ForwardWith(engine).Build().Process(in)
			if err != nil {
				return err
			}
			bins := out.(*buffer.Complex).Samples()
			if !v.GetBool("full") {
				bins = bins[:len(bins)/2+1]
			}

			if v.GetBool("peak") {
				return printPeak(cmd, bins, in.Len(), in.SampleRate())
			}
			return printBins(cmd, bins, in.Len(), in.SampleRate())
		},
	}

	cmd.Flags().String("window", "rectangular", "window applied before the transform")
	cmd.Flags().String("backend", "native", "transform backend (native, algofft, gonum, godsp)")
	cmd.Flags().String("strategy", "direct", "non power-of-two strategy (direct, bluestein)")
	cmd.Flags().Bool("full", false, "print all bins instead of up to Nyquist")
	cmd.Flags().Bool("peak", false, "print only the interpolated peak frequency")
	return cmd
}

func printBins(cmd *cobra.Command, bins []complex128, n int, sampleRate float64) error {
	freqs := spectrum.BinFrequencies(len(bins), n, sampleRate)
	mag := spectrum.Magnitude(bins)
	db := spectrum.PowerDB(bins)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFreq [Hz]\tRe\tIm\tMagnitude\tPower [dB]\n")
	for k, b := range bins {
		fmt.Fprintf(tw, "%d\t%.3f\t%.6g\t%.6g\t%.6g\t%.2f\n",
			k, freqs[k], zeroSign(real(b)), zeroSign(imag(b)), zeroSign(mag[k]), db[k])
	}
	return tw.Flush()
}

func printPeak(cmd *cobra.Command, bins []complex128, n int, sampleRate float64) error {
	mag := spectrum.Magnitude(bins)
	k, m, err := spectrum.PeakBin(mag)
	if err != nil {
		return err
	}
	f := spectrum.InterpolatePeak(mag, k) * sampleRate / float64(n)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "peak bin %d, %.3f Hz, magnitude %.6g\n", k, f, m)
	return err
}

// zeroSign rounds values below print precision to positive zero.
func zeroSign(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 0
	}
	return x
}
