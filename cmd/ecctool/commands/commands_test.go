package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-eccore/internal/logging"
	"github.com/smallyu/go-eccore/internal/selftest"
	"github.com/smallyu/go-eccore/pkg/ecc"
)

const ed25519Base = "5866666666666666666666666666666666666666666666666666666666666666"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runApp(t, args...)
	return out, err
}

// runApp executes a fresh command tree and returns it for inspection.
func runApp(t *testing.T, args ...string) (string, *app, error) {
	t.Helper()
	a := newApp()
	root := a.rootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), a, err
}

func TestCurves(t *testing.T) {
	out, err := run(t, "curves")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	require.Contains(t, out, "secp521r1")
	require.Regexp(t, `ed448\s+edwards\s+448\s+446\s+yes\s+no\s+57 bytes`, out)
}

func TestReduce(t *testing.T) {
	out, err := run(t, "reduce", strings.Repeat("ff", 32))
	require.NoError(t, err)
	require.Equal(t, "00000000000000000000000000000000000000000000000000000001000003d0\n", out)

	out, err = run(t, "reduce", "-c", "ed25519", "--scalar", "05")
	require.NoError(t, err)
	require.Equal(t, "05"+strings.Repeat("00", 31)+"\n", out)

	fast, err := run(t, "reduce", "-c", "p-256", "--wide", strings.Repeat("ab", 64))
	require.NoError(t, err)
	generic, err := run(t, "reduce", "-c", "p-256", "--wide", "--generic", strings.Repeat("ab", 64))
	require.NoError(t, err)
	require.Equal(t, fast, generic)

	_, err = run(t, "reduce", "-m", "x", "00")
	require.ErrorIs(t, err, ecc.ErrUnknownModulus)
	_, err = run(t, "reduce", "zz")
	require.Error(t, err)
}

func TestCompressDecompress(t *testing.T) {
	out, err := run(t, "compress", "--base")
	require.NoError(t, err)
	require.Equal(t, ed25519Base+"\n", out)

	out, err = run(t, "decompress", ed25519Base)
	require.NoError(t, err)
	require.Equal(t, "x: 216936d3cd6e53fec0a4e231fdd6dc5c692cc7609525a7b2c9562d608f25d51a\n"+
		"y: 6666666666666666666666666666666666666666666666666666666666666658\n", out)

	out, err = run(t, "compress",
		"216936d3cd6e53fec0a4e231fdd6dc5c692cc7609525a7b2c9562d608f25d51a",
		"6666666666666666666666666666666666666666666666666666666666666658")
	require.NoError(t, err)
	require.Equal(t, ed25519Base+"\n", out)

	out, err = run(t, "decompress", "--montgomery", ed25519Base)
	require.NoError(t, err)
	require.Equal(t, "u: 09"+strings.Repeat("00", 31)+"\n", out)

	_, err = run(t, "decompress", "edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
	require.ErrorIs(t, err, ecc.ErrNonCanonical)

	_, err = run(t, "compress", "-c", "secp256k1", "--base")
	require.ErrorIs(t, err, ecc.ErrNoEncoding)

	_, err = run(t, "compress", "00")
	require.Error(t, err)
}

func TestSelfTest(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "selftest.prom")
	out, err := run(t, "selftest", "--samples", "40", "--seed", "3", "--curve", "ed25519", "--metrics-file", metrics)
	require.NoError(t, err)
	require.Contains(t, out, "seed 3")
	require.Contains(t, out, "edwards25519")
	require.NotContains(t, out, "FAIL")

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(prom), `eccore_selftest_samples_total{check="reduce",curve="ed25519",modulus="p"} 40`)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecctool.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  format: json
  level: warn
selftest:
  samples: 10
  seed: 9
  curves: [p-256]
`), 0o600))

	out, a, err := runApp(t, "--config", path, "selftest")
	require.NoError(t, err)
	require.Contains(t, out, "seed 9")
	require.Contains(t, out, "secp256r1")
	require.NotContains(t, out, "ed25519")
	require.Equal(t, "json", a.cfg.Log.Format)
	require.Equal(t, 10, a.cfg.SelfTest.Samples)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "curves")
	require.Error(t, err)

	typo := filepath.Join(t.TempDir(), "ecctool.yaml")
	require.NoError(t, os.WriteFile(typo, []byte("selftest:\n  sampels: 10\n"), 0o600))
	_, err = run(t, "--config", typo, "curves")
	require.ErrorContains(t, err, "sampels")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("ECCTOOL_SELFTEST_SEED", "11")
	t.Setenv("ECCTOOL_SELFTEST_SAMPLES", "10")
	t.Setenv("ECCTOOL_SELFTEST_CURVES", "secp256k1")
	out, a, err := runApp(t, "selftest")
	require.NoError(t, err)
	require.Contains(t, out, "seed 11")
	require.Equal(t, []string{"secp256k1"}, a.cfg.SelfTest.Curves)

	t.Setenv("ECCTOOL_LOG_LEVEL", "loud")
	_, err = run(t, "curves")
	require.ErrorContains(t, err, "invalid log level")
}

func TestTreesAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecctool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\nselftest:\n  samples: 7\n"), 0o600))

	first, second := newApp(), newApp()
	firstRoot, secondRoot := first.rootCommand(), second.rootCommand()
	for _, root := range []*cobra.Command{firstRoot, secondRoot} {
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
	}

	firstRoot.SetArgs([]string{"--config", path, "--log-level", "debug", "curves"})
	require.NoError(t, firstRoot.Execute())
	secondRoot.SetArgs([]string{"curves"})
	require.NoError(t, secondRoot.Execute())

	require.Equal(t, path, first.configFile)
	require.Equal(t, "json", first.cfg.Log.Format)
	require.Equal(t, "debug", first.cfg.Log.Level)
	require.Equal(t, 7, first.cfg.SelfTest.Samples)

	require.Empty(t, second.configFile)
	require.Equal(t, logging.Console, second.cfg.Log.Format)
	require.Equal(t, "info", second.cfg.Log.Level)
	require.Equal(t, selftest.DefaultSamples, second.cfg.SelfTest.Samples)
	require.NotSame(t, first.v, second.v)
	require.NotSame(t, first.logger, second.logger)
}
