package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-sigproc/dsp/buffer"
	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/pipeline"
	"github.com/cwbudde/algo-sigproc/logging"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] [--] [sample ...]",
		Short: "Run samples through a configured pipeline",
		Long: `Builds a pipeline from the YAML file given with --pipeline-file, or from the
"pipeline" key of the config file, and prints its output. Real output is
printed one sample per line, complex output as "re im" pairs. With
--channels above one the input is taken as interleaved frames and each
channel runs through its own copy of the pipeline. Put -- before samples
on the command line when any of them is negative.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadPipelineConfig(v)
			if err != nil {
				return err
			}
			if cfg.SampleRate == 0 {
				cfg.SampleRate = v.GetFloat64("sample-rate")
			}
			p, err := pipeline.FromConfig(cfg)
			if err != nil {
				return err
			}

			samples, err := readSamples(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			logging.Named("sigproc").Debug("running pipeline",
				zap.Int("stages", p.Len()),
				zap.Int("samples", len(samples)),
				zap.Float64("sampleRate", cfg.SampleRate),
			)

			channels := v.GetInt("channels")
			if channels <= 1 {
				in, err := buffer.FromSlice(samples, cfg.SampleRate)
				if err != nil {
					return err
				}
				out, err := p.Process(in)
				if err != nil {
					return err
				}
				return writeSignal(cmd.OutOrStdout(), out)
			}

			in, err := buffer.Deinterleave(samples, channels, cfg.SampleRate)
			if err != nil {
				return err
			}
			outs, err := pipeline.NewMulti(p).Process(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeChannels(cmd.OutOrStdout(), outs)
		},
	}

	cmd.Flags().String("pipeline-file", "", "pipeline YAML file")
	cmd.Flags().Int("channels", 1, "number of interleaved input channels")
	return cmd
}

func loadPipelineConfig(v *viper.Viper) (pipeline.Config, error) {
	var cfg pipeline.Config
	switch path := v.GetString("pipeline-file"); {
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return pipeline.Config{}, err
		}
		if cfg, err = pipeline.ParseConfig(data); err != nil {
			return pipeline.Config{}, fmt.Errorf("%s: %w", path, err)
		}
	case v.IsSet("pipeline"):
		if err := v.UnmarshalKey("pipeline", &cfg); err != nil {
			return pipeline.Config{}, fmt.Errorf("config key pipeline: %w", err)
		}
	}
	if len(cfg.Stages) == 0 {
		return pipeline.Config{}, fmt.Errorf("no pipeline stages configured: %w", core.ErrInvalidSpecification)
	}
	return cfg, nil
}

func writeSignal(w io.Writer, s buffer.Signal) error {
	switch b := s.(type) {
	case *buffer.Buffer:
		for _, x := range b.Samples() {
			if _, err := fmt.Fprintf(w, "%.10g\n", x); err != nil {
				return err
			}
		}
	case *buffer.Complex:
		for _, c := range b.Samples() {
			if _, err := fmt.Fprintf(w, "%.10g %.10g\n", zeroSign(real(c)), zeroSign(imag(c))); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("cannot print %T", s)
	}
	return nil
}

// writeChannels prints real channels as interleaved frames and other
// results channel by channel.
func writeChannels(w io.Writer, outs []buffer.Signal) error {
	reals := make([]*buffer.Buffer, 0, len(outs))
	for _, s := range outs {
		if b, ok := s.(*buffer.Buffer); ok {
			reals = append(reals, b)
		}
	}
	if len(reals) == len(outs) {
		m, err := buffer.NewMulti(reals...)
		if err != nil {
			return err
		}
		for _, x := range m.Interleaved() {
			if _, err := fmt.Fprintf(w, "%.10g\n", x); err != nil {
				return err
			}
		}
		return nil
	}

	for i, s := range outs {
		if _, err := fmt.Fprintf(w, "# channel %d\n", i); err != nil {
			return err
		}
		if err := writeSignal(w, s); err != nil {
			return err
		}
	}
	return nil
}
