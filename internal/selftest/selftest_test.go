package selftest

import (
	"context"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/smallyu/go-eccore/internal/crypto/curves"
)

func TestRunPasses(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	r := New(Config{Samples: 200, Seed: 7, Curves: []string{"Ed25519", "secp256k1"}}, zap.New(core), metrics)
	report, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(7), report.Seed)
	require.Zero(t, report.Failed())
	// ed25519 adds the codec and edwards25519 checks.
	require.Len(t, report.Results, 12)

	require.Equal(t, 200.0, testutil.ToFloat64(metrics.Samples.WithLabelValues("secp256k1", "p", "reduce")))
	require.Equal(t, 20.0, testutil.ToFloat64(metrics.Samples.WithLabelValues("ed25519", "p", "codec")))
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.Failures.WithLabelValues("ed25519", "q", "mul")))
	require.Equal(t, 12, testutil.CollectAndCount(metrics.Duration))

	require.Equal(t, 1, logs.FilterMessage("self-test passed").Len())
	require.Zero(t, logs.FilterMessage("check failed").Len())
}

func TestRunAllCurves(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full self-test in short mode")
	}
	report, err := New(Config{Samples: 500, Seed: 1}, nil, nil).Run(context.Background())
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, res := range report.Results {
		seen[res.Curve] = true
	}
	require.Len(t, seen, len(curves.Names()))
}

func TestRunDefaults(t *testing.T) {
	r := New(Config{}, nil, nil)
	require.Equal(t, DefaultSamples, r.cfg.Samples)
	require.NotNil(t, r.logger)
	require.NotNil(t, r.metrics)
}

func TestRunRandomSeed(t *testing.T) {
	report, err := New(Config{Samples: 10, Curves: []string{"p-256"}}, nil, nil).Run(context.Background())
	require.NoError(t, err)
	require.NotZero(t, report.Seed)
}

func TestRunUnknownCurve(t *testing.T) {
	_, err := New(Config{Curves: []string{"brainpool"}}, nil, nil).Run(context.Background())
	require.ErrorIs(t, err, curves.ErrUnknownCurve)
	require.Contains(t, err.Error(), "brainpool")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := New(Config{Samples: 10, Seed: 1}, nil, nil).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, report.Results)
}

func TestFailuresAreCountedAndCapped(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	metrics := NewMetrics(nil)
	r := New(Config{Samples: 1}, zap.New(core), metrics)

	res := r.run(rand.New(rand.NewSource(1)), check{
		curve:   "ed448",
		modulus: "q",
		name:    "broken",
		samples: 20,
		sample: func(rng *rand.Rand) error {
			if rng.Intn(2) == 0 {
				return nil
			}
			return errors.New("mismatch")
		},
	})
	require.Equal(t, 20, res.Samples)
	require.Positive(t, res.Failures)
	require.Equal(t, float64(res.Failures), testutil.ToFloat64(metrics.Failures.WithLabelValues("ed448", "q", "broken")))
	require.Equal(t, min(res.Failures, maxReported), logs.FilterMessage("check failed").Len())

	entry := logs.FilterMessage("check done").All()[0]
	require.Equal(t, "broken", entry.ContextMap()["check"])
}

func TestReportFailed(t *testing.T) {
	report := &Report{Results: []Result{{Failures: 0}, {Failures: 3}, {Failures: 1}}}
	require.Equal(t, 2, report.Failed())
}
