package main

import (
	"fmt"
	"text/tabwriter"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-driver/measure/ir"
	"github.com/cwbudde/algo-driver/transducer"
)

// NewImpulseCommand .
func NewImpulseCommand() *cobra.Command {
	var (
		rate float64
		size int
	)

	cmd := &cobra.Command{
		Use:   "impulse",
		Short: "Print the diaphragm velocity impulse response",
		Long: `Print the diaphragm velocity per volt impulse response, obtained by an
inverse FFT of the velocity transfer function sampled on a uniform grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}

			h, err := transducer.ImpulseResponse(c.Parameters, rate, size)
			if err != nil {
				return pkgerrors.Wrap(err, "impulse response failed")
			}

			m, err := ir.NewAnalyzer(rate).Analyze(h)
			if err != nil {
				return pkgerrors.Wrap(err, "impulse analysis failed")
			}
			logrus.WithFields(logrus.Fields{
				"rate":       rate,
				"size":       size,
				"peakTime":   m.PeakTime,
				"centerTime": m.CenterTime,
				"decayTime":  m.DecayTime,
				"earlyRatio": m.EarlyRatio,
			}).Info("impulse response")

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "n\ttime_s\tvelocity")
			for i, v := range h {
				fmt.Fprintf(tw, "%d\t%.6g\t%.10g\n", i, float64(i)/rate, v)
			}
			return tw.Flush()
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&rate, "rate", "r", 48000, "sample rate in Hz")
	f.IntVarP(&size, "size", "s", 1024, "number of samples (power of two)")

	return cmd
}
