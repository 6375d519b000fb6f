package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sigproc/dsp/filter/design"
)

func newDesignCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Design a filter and print its coefficients",
		Long: `Designs a Butterworth biquad cascade or a windowed-sinc FIR and prints
its coefficients. Frequencies given with --at add a response table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := specFromFlags(v)
			if err != nil {
				return err
			}
			var opts []design.Option
			if v.GetBool("stability-check") {
				opts = append(opts, design.WithStabilityCheck())
			}
			c, err := design.Design(spec, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := printCoefficients(out, spec, c); err != nil {
				return err
			}
			if at := v.GetStringSlice("at"); len(at) > 0 {
				freqs, err := readSamples(nil, at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				return printResponse(out, c, freqs)
			}
			return nil
		},
	}

	cmd.Flags().String("response", "lowpass", "lowpass, highpass, bandpass or bandstop")
	cmd.Flags().String("method", "butterworth", "butterworth (IIR) or sinc (FIR)")
	cmd.Flags().Int("order", 4, "filter order")
	cmd.Flags().Float64("cutoff", 1000, "cutoff, or lower band edge, in Hz")
	cmd.Flags().Float64("cutoff-high", 0, "upper band edge in Hz for band filters")
	cmd.Flags().String("window", "", "FIR design window (default hamming)")
	cmd.Flags().Bool("stability-check", false, "fail if the designed filter is unstable")
	cmd.Flags().StringSlice("at", nil, "frequencies in Hz at which to print the response")
	return cmd
}

func specFromFlags(v *viper.Viper) (design.Spec, error) {
	r, err := design.ParseResponse(v.GetString("response"))
	if err != nil {
		return design.Spec{}, err
	}
	m, err := design.ParseMethod(v.GetString("method"))
	if err != nil {
		return design.Spec{}, err
	}
	return design.Spec{
		Response:   r,
		Order:      v.GetInt("order"),
		Cutoff:     v.GetFloat64("cutoff"),
		CutoffHigh: v.GetFloat64("cutoff-high"),
		SampleRate: v.GetFloat64("sample-rate"),
		Method:     m,
		Window:     v.GetString("window"),
	}, nil
}

func printCoefficients(w io.Writer, spec design.Spec, c design.Coefficients) error {
	fmt.Fprintf(w, "%s %s, order %d, %s\n", spec.Method, spec.Response, c.Order(), c.Kind)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if c.Kind == design.KindFIR {
		fmt.Fprintf(tw, "Tap\tValue\n")
		for i, t := range c.Taps {
			fmt.Fprintf(tw, "%d\t%.12g\n", i, t)
		}
		return tw.Flush()
	}

	fmt.Fprintf(tw, "Section\tb0\tb1\tb2\ta1\ta2\n")
	for i, s := range c.Sections {
		fmt.Fprintf(tw, "%d\t%.12g\t%.12g\t%.12g\t%.12g\t%.12g\n", i, s.B0, s.B1, s.B2, s.A1, s.A2)
	}
	return tw.Flush()
}

func printResponse(w io.Writer, c design.Coefficients, freqs []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tMagnitude [dB]\tPhase [deg]\n")
	for _, f := range freqs {
		h := c.Response(f)
		fmt.Fprintf(tw, "%.3f\t%.2f\t%.2f\n", f, c.MagnitudeDB(f), cmplx.Phase(h)*180/math.Pi)
	}
	return tw.Flush()
}
