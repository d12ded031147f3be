package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-eccore/internal/selftest"
)

func (a *app) selftestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check reduction and point encoding against independent implementations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			runner := selftest.New(a.cfg.SelfTest, a.logger.Named("selftest"), selftest.NewMetrics(reg))

			report, runErr := runner.Run(cmd.Context())
			if report != nil {
				out := cmd.OutOrStdout()
				for _, r := range report.Results {
					status := "ok"
					if r.Failures > 0 {
						status = fmt.Sprintf("FAIL (%d)", r.Failures)
					}
					fmt.Fprintf(out, "%-10s %s %-13s %7d  %s\n", r.Curve, r.Modulus, r.Check, r.Samples, status)
				}
				fmt.Fprintf(out, "seed %d\n", report.Seed)
			}

			if a.cfg.Metrics.File != "" {
				if err := prometheus.WriteToTextfile(a.cfg.Metrics.File, reg); err != nil {
					return errors.Wrap(err, "writing metrics")
				}
				a.logger.Info("wrote metrics", zap.String("file", a.cfg.Metrics.File))
			}
			return runErr
		},
	}

	flags := cmd.Flags()
	flags.Int("samples", selftest.DefaultSamples, "random inputs per reduction check")
	flags.Int64("seed", 0, "random seed, 0 for a fresh one")
	flags.StringSlice("curve", nil, "curves to check (default all)")
	flags.String("metrics-file", "", "write metrics in Prometheus text format")
	a.bindFlags(flags, map[string]string{
		"selftest.samples": "samples",
		"selftest.seed":    "seed",
		"selftest.curves":  "curve",
		"metrics.file":     "metrics-file",
	})
	return cmd
}
