package main

import (
	"context"
	"runtime"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-driver/internal/report"
	"github.com/cwbudde/algo-driver/transducer"
)

type solveOptions struct {
	points    int
	start     float64
	end       float64
	log       bool
	format    string
	workers   int
	impedance bool
	smooth    int
	strict    bool
	summary   bool
}

// NewSolveCommand .
func NewSolveCommand() *cobra.Command {
	o := solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute voltage magnitude and efficiency over a frequency sweep",
		Example: `  driverresp solve
  driverresp solve --points 50 --log --format csv
  driverresp --config horn.yaml solve --impedance --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd.Context(), cmd, o)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&o.points, "points", "n", 0, "number of sweep points (default from config or 300)")
	f.Float64Var(&o.start, "start", 0, "first frequency in Hz (default f0/4)")
	f.Float64Var(&o.end, "end", 0, "last frequency in Hz (default 1.5*f0)")
	f.BoolVar(&o.log, "log", false, "use logarithmic spacing")
	f.StringVarP(&o.format, "format", "o", "table", "output format (table, csv, json)")
	f.IntVarP(&o.workers, "workers", "j", runtime.NumCPU(), "parallel workers")
	f.BoolVar(&o.impedance, "impedance", false, "add impedance magnitude, phase and group delay columns")
	f.IntVar(&o.smooth, "smooth", 0, "1/N-octave smoothing of the efficiency curve (0 = off)")
	f.BoolVar(&o.strict, "strict", false, "fail when any sample is NaN or Inf")
	f.BoolVar(&o.summary, "summary", true, "print curve statistics")

	return cmd
}

func runSolve(ctx context.Context, cmd *cobra.Command, o solveOptions) error {
	format, err := report.ParseFormat(o.format)
	if err != nil {
		return err
	}

	c, err := loadConfig()
	if err != nil {
		return err
	}

	sc := c.Sweep
	if o.log {
		sc.Spacing = "log"
	}

	grid, err := sc.Resolve(c.Parameters.CenterFreq)
	if err != nil {
		return err
	}

	// Explicit flags always win, zero included, and go through validation.
	flags := cmd.Flags()
	if flags.Changed("points") {
		grid.Points = o.points
	}
	if flags.Changed("start") {
		grid.StartFreq = o.start
	}
	if flags.Changed("end") {
		grid.EndFreq = o.end
	}

	freqs, err := grid.Frequencies()
	if err != nil {
		return pkgerrors.Wrap(err, "invalid sweep")
	}

	opts := []transducer.Option{transducer.WithWorkers(o.workers)}
	if o.impedance {
		opts = append(opts, transducer.WithImpedance())
	}
	if o.strict {
		opts = append(opts, transducer.WithStrictFinite())
	}

	start := time.Now()
	res, err := transducer.SolveContext(ctx, c.Parameters, freqs, opts...)
	if err != nil {
		return pkgerrors.Wrap(err, "solve failed")
	}

	entry := logrus.WithFields(logrus.Fields{
		"points":  res.Len(),
		"start":   grid.StartFreq,
		"end":     grid.EndFreq,
		"spacing": grid.Spacing.String(),
		"elapsed": time.Since(start),
	})
	if res.NonFinite > 0 {
		entry.WithField("nonFinite", res.NonFinite).Warn("sweep contains non-finite samples")
	} else {
		entry.Debug("sweep solved")
	}

	out, err := report.Build(res, report.Options{Smooth: o.smooth, Summary: o.summary})
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), out, format)
}
