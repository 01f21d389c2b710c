package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/felixge/fgprof"
	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/katalvlaran/cuckatoo/engine"
	"github.com/katalvlaran/cuckatoo/keys"
)

const envPrefix = "CUCKATOO"

// Trimming modes accepted by --mode. Only lean is implemented.
const (
	modeLean  = "lean"
	modeMean  = "mean"
	modeSlean = "slean"
)

var (
	ErrUnsupportedMode = errors.New("unsupported trimming mode")
	ErrBadHeader       = errors.New("header is not valid hex")
	ErrNonceRange      = errors.New("nonce range is empty or overflows")
)

// app holds the command tree and its flag values. Each app has its own
// viper instance so commands can be built and run repeatedly in tests.
type app struct {
	root *cobra.Command
	v    *viper.Viper
	log  zerolog.Logger

	loglevel   string
	configFile string
	fgprofFile string

	edgeBits    uint
	mode        string
	rounds      int
	cycleLength int
	header      string
	nonce       uint64
	maxSolution int
	maxSearch   uint64

	stopProfile func() error
}

func newApp() *app {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	a.root = &cobra.Command{
		Use:               "cuckatoo",
		Short:             "Lean Cuckatoo cycle solver",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.stopProfile != nil {
				return errors.Wrap(a.stopProfile(), "stopping fgprof")
			}
			return nil
		},
	}

	pf := a.root.PersistentFlags()
	pf.StringVar(&a.loglevel, "loglevel", "info", "Console log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.configFile, "config", "", "YAML configuration file")
	pf.StringVar(&a.fgprofFile, "fgprof", "", "Write an fgprof profile of the run to this file")
	pf.UintVar(&a.edgeBits, "edge-bits", 12, fmt.Sprintf("Graph size: 2^edge-bits edges (%d..%d)", engine.MinEdgeBits, engine.MaxEdgeBits))
	pf.StringVar(&a.mode, "mode", modeLean, "Trimming mode (only lean is supported)")
	pf.IntVar(&a.rounds, "trimming-rounds", engine.DefaultTrimRounds, "Maximum number of trimming rounds")
	pf.IntVar(&a.cycleLength, "cycle-length", engine.DefaultCycleLength, "Cycle length to search for")
	pf.StringVar(&a.header, "header", "", "Block header as hex (default: fixed tuning header)")
	pf.Uint64Var(&a.nonce, "nonce", 0, "Nonce (first nonce for mine)")
	pf.IntVar(&a.maxSolution, "max-solutions", engine.DefaultMaxSolutions, "Cycles to report per graph (0 = all, small graphs only)")
	pf.Uint64Var(&a.maxSearch, "max-search-edges", engine.DefaultMaxSearchEdges, "Largest trimmed graph the cycle search accepts")
	_ = pf.MarkHidden("cycle-length")

	a.root.AddCommand(a.tuneCommand(), a.mineCommand(), a.verifyCommand(), a.versionCommand())

	return a
}

// preRun loads configuration, sets up logging and runtime limits.
func (a *app) preRun(cmd *cobra.Command, args []string) error {
	if err := a.loadConfiguration(cmd); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(a.loglevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", a.loglevel)
	}
	a.log = newLogger(colorable.NewColorableStderr(), level)

	if _, err = memlimit.SetGoMemLimit(0.8); err != nil {
		a.log.Debug().Err(err).Msg("GOMEMLIMIT not set")
	}
	if _, err = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		a.log.Debug().Msgf(format, args...)
	})); err != nil {
		a.log.Debug().Err(err).Msg("GOMAXPROCS not adjusted")
	}

	if a.fgprofFile != "" {
		f, err := os.Create(a.fgprofFile)
		if err != nil {
			return errors.Wrap(err, "creating fgprof file")
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		a.stopProfile = func() error {
			if err := stop(); err != nil {
				return err
			}
			return f.Close()
		}
	}

	return nil
}

// loadConfiguration fills flags the user did not set from CUCKATOO_*
// environment variables and the optional config file.
func (a *app) loadConfiguration(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", a.configFile)
		}
	}

	return bindFlags(cmd, a.v)
}

// bindFlags applies viper values to every flag that was not set on the
// command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var err error
	apply := func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			err = sv.Replace(v.GetStringSlice(f.Name))
		} else {
			err = f.Value.Set(v.GetString(f.Name))
		}
		if err != nil {
			err = errors.Wrapf(err, "flag --%s from configuration", f.Name)
		}
	}
	// Parsed commands carry their inherited persistent flags in Flags().
	cmd.Flags().VisitAll(apply)

	return err
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}).
		Level(level).
		With().Timestamp().Logger()
}

// engineConfig builds and validates the engine configuration from flags.
func (a *app) engineConfig() (engine.Config, error) {
	switch a.mode {
	case modeLean:
	case modeMean, modeSlean:
		return engine.Config{}, errors.Wrapf(ErrUnsupportedMode, "%s trimming is not implemented", a.mode)
	default:
		return engine.Config{}, errors.Wrapf(ErrUnsupportedMode, "unknown mode %q", a.mode)
	}

	cfg := engine.DefaultConfig()
	cfg.EdgeBits = a.edgeBits
	cfg.TrimRounds = a.rounds
	cfg.CycleLength = a.cycleLength
	cfg.MaxSolutions = a.maxSolution
	cfg.MaxSearchEdges = a.maxSearch

	return cfg, cfg.Validate()
}

func (a *app) newEngine() (*engine.Engine, error) {
	cfg, err := a.engineConfig()
	if err != nil {
		return nil, errors.Wrap(err, "configuration")
	}
	e, err := engine.New(cfg, engine.WithLogger(a.log))
	if err != nil {
		return nil, errors.Wrap(err, "creating engine")
	}

	return e, nil
}

// headerBytes decodes --header, falling back to the tuning header.
func (a *app) headerBytes() ([]byte, error) {
	if a.header == "" {
		return keys.TuningHeader(), nil
	}
	h, err := hex.DecodeString(strings.TrimPrefix(a.header, "0x"))
	if err != nil {
		return nil, errors.Wrapf(ErrBadHeader, "%v", err)
	}

	return h, nil
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d.Microseconds())/1000)
}
