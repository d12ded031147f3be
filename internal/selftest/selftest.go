// Package selftest runs the reduction and point-codec properties against
// independent implementations at runtime, logging each check and feeding
// the results into Prometheus collectors.
package selftest

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/smallyu/go-eccore/internal/crypto/curves"
)

// Config controls a self-test run. It is decoded from the selftest section
// of the tool's configuration.
type Config struct {
	// Samples is the number of random inputs per reduction check. Codec
	// checks use a tenth of it.
	Samples int `mapstructure:"samples"`
	// Seed makes a run reproducible. Zero picks a random seed.
	Seed int64 `mapstructure:"seed"`
	// Curves restricts the run to the named curves. Empty means all.
	Curves []string `mapstructure:"curves"`
}

// DefaultSamples matches the sample count of the offline property tests.
const DefaultSamples = 50000

// maxReported bounds the failing inputs logged per check.
const maxReported = 5

// Result summarizes one check.
type Result struct {
	Curve    string
	Modulus  string
	Check    string
	Samples  int
	Failures int
	Duration time.Duration
}

// Report is the outcome of a run.
type Report struct {
	Seed    int64
	Results []Result
}

// Failed returns the number of checks with at least one failure.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Failures > 0 {
			n++
		}
	}
	return n
}

// Runner executes self-test runs.
type Runner struct {
	cfg     Config
	logger  *zap.Logger
	metrics *Metrics
}

// New creates a Runner. A nil logger discards output and nil metrics are
// replaced by an unregistered set.
func New(cfg Config, logger *zap.Logger, metrics *Metrics) *Runner {
	if cfg.Samples <= 0 {
		cfg.Samples = DefaultSamples
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Runner{cfg: cfg, logger: logger, metrics: metrics}
}

// Run executes every check for the configured curves. It returns an error
// if a curve name is unknown, if ctx is cancelled, or if any check failed;
// the report is returned in the last case too.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	selected, err := r.curves()
	if err != nil {
		return nil, err
	}

	seed := r.cfg.Seed
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return nil, errors.Wrap(err, "seeding self-test")
		}
		seed = int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	}
	rng := rand.New(rand.NewSource(seed))
	report := &Report{Seed: seed}
	r.logger.Info("starting self-test", zap.Int64("seed", seed), zap.Int("samples", r.cfg.Samples), zap.Int("curves", len(selected)))

	for _, c := range selected {
		for _, chk := range r.checks(c) {
			if err := ctx.Err(); err != nil {
				return report, errors.Wrap(err, "self-test interrupted")
			}
			report.Results = append(report.Results, r.run(rng, chk))
		}
	}

	if failed := report.Failed(); failed > 0 {
		return report, errors.Errorf("self-test: %d of %d checks failed", failed, len(report.Results))
	}
	r.logger.Info("self-test passed", zap.Int("checks", len(report.Results)))
	return report, nil
}

func (r *Runner) curves() ([]*curves.Curve, error) {
	if len(r.cfg.Curves) == 0 {
		return curves.All(), nil
	}
	var out []*curves.Curve
	for _, name := range r.cfg.Curves {
		c, err := curves.ByName(name)
		if err != nil {
			return nil, errors.Wrapf(err, "selftest curve %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}

// check is one named property, evaluated once per sample.
type check struct {
	curve   string
	modulus string
	name    string
	samples int
	sample  func(rng *rand.Rand) error
}

func (r *Runner) run(rng *rand.Rand, chk check) Result {
	labels := []string{chk.curve, chk.modulus, chk.name}
	log := r.logger.With(zap.String("curve", chk.curve), zap.String("modulus", chk.modulus), zap.String("check", chk.name))

	start := time.Now()
	res := Result{Curve: chk.curve, Modulus: chk.modulus, Check: chk.name, Samples: chk.samples}
	for i := 0; i < chk.samples; i++ {
		if err := chk.sample(rng); err != nil {
			res.Failures++
			if res.Failures <= maxReported {
				log.Error("check failed", zap.Int("sample", i), zap.Error(err))
			}
		}
	}
	res.Duration = time.Since(start)

	r.metrics.Samples.WithLabelValues(labels...).Add(float64(res.Samples))
	r.metrics.Failures.WithLabelValues(labels...).Add(float64(res.Failures))
	r.metrics.Duration.WithLabelValues(labels...).Observe(res.Duration.Seconds())
	log.Debug("check done", zap.Int("samples", res.Samples), zap.Int("failures", res.Failures), zap.Duration("elapsed", res.Duration))
	return res
}
