// Command driverresp computes the frequency response of a loudspeaker driver
// coupled to a lossy transmission line.
//
// Usage:
//
//	driverresp solve [--config file.yaml] [--points N] [--start Hz] [--end Hz]
//	driverresp params
//	driverresp impulse [--rate Hz] [--size N]
//	driverresp serve [--addr :8080]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-driver/internal/config"
)

var (
	logLevel   = "info"
	configPath = ""
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if isatty.IsTerminal(os.Stderr.Fd()) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

// loadConfig returns the defaults when no config file is given.
func loadConfig() (*config.File, error) {
	if configPath == "" {
		return config.Default(), nil
	}

	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logrus.WithField("path", configPath).Debug("loaded config file")
	return c, nil
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewCommand builds the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "driverresp",
		Short: "driverresp computes loudspeaker driver frequency responses",
		Long: `driverresp computes the terminal voltage and acoustic efficiency of a
current-driven loudspeaker driver loaded by a lossy closed transmission line.

Parameters and the frequency sweep are read from an optional YAML file
(see "driverresp params" for the format); flags override the sweep.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVarP(&configPath, "config", "c", "", "YAML parameter file")

	cmd.AddCommand(
		NewSolveCommand(),
		NewParamsCommand(),
		NewImpulseCommand(),
		NewServeCommand(),
	)

	return cmd
}
