package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sigproc/logging"
)

const envPrefix = "SIGPROC"

const unknownShorthand = "unknown shorthand flag: '"

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:   "sigproc",
		Short: "Windows, transforms and filters from the command line",
		Long: `sigproc exposes the algo-sigproc library: window generation and
analysis, forward transforms, filter design and YAML-described pipelines.

Every flag can also be set in the config file (keys are flag names) or
through SIGPROC_<FLAG> environment variables, for example
SIGPROC_SAMPLE_RATE=44100.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, configFile); err != nil {
				return err
			}
			if err := bindFlags(cmd, v); err != nil {
				return err
			}
			return initLogger(v.GetString("log-level"))
		},
	}

	root.SetFlagErrorFunc(flagError)

	root.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is ./sigproc.yaml or $HOME/.config/sigproc/sigproc.yaml)")
	root.PersistentFlags().String("log-level", "warn",
		"log level (debug, info, warn, error)")
	root.PersistentFlags().Float64("sample-rate", 48000,
		"sample rate in Hz")

	root.AddCommand(
		newWindowCmd(v),
		newFFTCmd(v),
		newDesignCmd(v),
		newRunCmd(v),
	)
	return root
}

// initConfig reads the config file named by --config, or the first
// sigproc.yaml found on the search path. A missing default file is fine.
func initConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("sigproc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "sigproc"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// bindFlags binds each flag of cmd to v under the flag's name, with a
// SIGPROC_ environment variable as fallback.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		env := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if err := v.BindEnv(f.Name, env); err != nil {
			errs = append(errs, err)
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

func initLogger(level string) error {
	logger, err := logging.New(level)
	if err != nil {
		return err
	}
	logging.SetLogger(logger)
	return nil
}

// flagError points at the -- separator when a negative sample was taken
// for a shorthand flag, e.g. "-0.5".
func flagError(_ *cobra.Command, err error) error {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, unknownShorthand); ok && rest != "" {
		if c := rest[0]; c == '.' || (c >= '0' && c <= '9') {
			return fmt.Errorf("%w (put -- before negative samples)", err)
		}
	}
	return err
}
