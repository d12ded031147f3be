package commands

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smallyu/go-eccore/internal/logging"
	"github.com/smallyu/go-eccore/internal/selftest"
)

// EnvPrefix prefixes environment overrides, e.g. ECCTOOL_LOG_LEVEL.
const EnvPrefix = "ECCTOOL"

// Config is the decoded configuration.
type Config struct {
	Log struct {
		Format string `mapstructure:"format"`
		Level  string `mapstructure:"level"`
	} `mapstructure:"log"`
	SelfTest selftest.Config `mapstructure:"selftest"`
	Metrics  struct {
		File string `mapstructure:"file"`
	} `mapstructure:"metrics"`
}

// app holds the state of one command tree. The subcommands read cfg and
// logger only after PersistentPreRunE has filled them in.
type app struct {
	configFile string
	v          *viper.Viper
	cfg        Config
	logger     *zap.Logger
}

func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	return newApp().rootCommand()
}

func newApp() *app {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	v := a.v
	v.SetDefault("log.format", logging.Console)
	v.SetDefault("log.level", "info")
	v.SetDefault("selftest.samples", selftest.DefaultSamples)
	v.SetDefault("selftest.seed", 0)
	v.SetDefault("selftest.curves", []string{})
	v.SetDefault("metrics.file", "")
	return a
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ecctool",
		Short:         "Modular reduction and Edwards point encoding for the standard curves",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			l, err := logging.New(logging.Config{
				Format: a.cfg.Log.Format,
				Level:  a.cfg.Log.Level,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.logger = l.Named("ecctool")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./ecctool.yaml)")
	flags.String("log-format", logging.Console, "log format: console, json or logfmt")
	flags.String("log-level", "info", "log level")
	a.bindFlags(flags, map[string]string{
		"log.format": "log-format",
		"log.level":  "log-level",
	})

	root.AddCommand(curvesCmd(), a.reduceCmd(), compressCmd(), a.decompressCmd(), a.selftestCmd())
	return root
}

// bindFlags binds configuration keys to the named flags of fs.
func (a *app) bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(errors.Wrapf(err, "binding flag %s", name))
		}
	}
}

func (a *app) loadConfig() error {
	v := a.v
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		v.SetConfigName("ecctool")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.ecctool")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.configFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "reading config")
		}
	}
	// Unknown keys are errors so that a misspelt setting is not ignored.
	err := v.Unmarshal(&a.cfg,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),
		func(dc *mapstructure.DecoderConfig) { dc.ErrorUnused = true },
	)
	if err != nil {
		return errors.Wrap(err, "decoding config")
	}
	return nil
}
