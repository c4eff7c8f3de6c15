// Package cli implements the sha2sum command.
package cli

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zeebo/sha2"
)

// EnvPrefix is prepended to every configuration key when read from the
// environment, e.g. SHA2SUM_ALGORITHM.
const EnvPrefix = "SHA2SUM"

const (
	flagAlgorithm = "algorithm"
	flagJobs      = "jobs"
	flagProgress  = "progress"
	flagCheck     = "check"
	flagConfig    = "config"
	flagLogLevel  = "log-level"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	Algorithm string
	Jobs      int
	Progress  bool
	Check     bool
	LogLevel  string
}

// variant returns the selected variant. ok is false when no algorithm was
// configured.
func (c Config) variant() (v sha2.Variant, ok bool, err error) {
	if c.Algorithm == "" {
		return 0, false, nil
	}
	v, err = sha2.ParseVariant(c.Algorithm)
	return v, err == nil, err
}

func bindFlags(fs *pflag.FlagSet) {
	fs.StringP(flagAlgorithm, "a", "", "hash algorithm: sha224, sha256, sha384 or sha512 (default sha256)")
	fs.IntP(flagJobs, "j", runtime.NumCPU(), "number of files hashed concurrently")
	fs.Bool(flagProgress, false, "show a progress bar on stderr")
	fs.BoolP(flagCheck, "c", false, "read checksums from the FILEs and check them")
	fs.String(flagConfig, "", "optional config file")
	fs.String(flagLogLevel, "warn", "level for logging output")
}

func loadConfig(conf *viper.Viper) (Config, error) {
	if file := conf.GetString(flagConfig); file != "" {
		conf.SetConfigFile(file)
		if err := conf.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", file)
		}
	}

	cfg := Config{
		Algorithm: conf.GetString(flagAlgorithm),
		Jobs:      conf.GetInt(flagJobs),
		Progress:  conf.GetBool(flagProgress),
		Check:     conf.GetBool(flagCheck),
		LogLevel:  conf.GetString(flagLogLevel),
	}
	if cfg.Jobs < 1 {
		return Config{}, errors.Errorf("invalid jobs: %d", cfg.Jobs)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "invalid log level")
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// NewCommand returns the sha2sum root command. Every call builds a fresh
// configuration store so commands are independent of each other.
func NewCommand() *cobra.Command {
	conf := viper.New()
	conf.SetEnvPrefix(EnvPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "sha2sum [flags] [FILE...]",
		Short: "Print or check SHA-2 checksums",
		Long: `Print or check SHA-2 (224, 256, 384 or 512 bit) checksums.
With no FILE, or when FILE is -, read standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(conf)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"-"}
			}

			r := &runner{
				cfg:    cfg,
				log:    log,
				stdin:  cmd.InOrStdin(),
				stdout: cmd.OutOrStdout(),
				stderr: cmd.ErrOrStderr(),
			}
			if cfg.Check {
				return r.check(args)
			}
			return r.sum(args)
		},
	}

	bindFlags(cmd.Flags())
	_ = conf.BindPFlags(cmd.Flags())

	return cmd
}
