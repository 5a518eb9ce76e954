package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arcanaland/bj21/internal/config"
	"github.com/arcanaland/bj21/internal/console"
	"github.com/arcanaland/bj21/internal/deck"
	"github.com/arcanaland/bj21/internal/entropy"
)

var (
	cfg = config.Default()
	log = zap.NewNop().Sugar()

	noColor  bool
	logLevel string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bj21",
	Short: "Blackjack against the dealer, in your terminal",
	Long: `BJ21 is a text-based Blackjack game played against the dealer with a fully
simulated 52-card deck. The deck is shuffled from the operating system's
entropy pool (or a configured hardware source) before every round.

Run without a subcommand to start a game.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	RunE: runPlay,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// setup loads the config file and builds the logger
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig()
	if err != nil {
		return err
	}
	cfg = loaded

	return setupLogging(cfg.LogLevel)
}

func setupLogging(level string) error {
	if logLevel != "" {
		level = logLevel
	}

	logger, err := newLogger(level, os.Stderr)
	if err != nil {
		return err
	}
	log = logger

	if noColor || !cfg.Color {
		color.NoColor = true
	}
	return nil
}

// newLogger returns a production JSON logger writing to w at the given level
func newLogger(level string, w io.Writer) (*zap.SugaredLogger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Sugar(), nil
}

// useColor reports whether game output should be colored
func useColor() bool {
	return cfg.Color && !noColor && console.IsTerminal(os.Stdout)
}

// openShuffler opens the configured entropy source and wraps it in a Shuffler.
// The returned closer releases the source.
func openShuffler() (*deck.Shuffler, io.Closer, error) {
	src, err := entropy.Open(cfg.Entropy)
	if err != nil {
		log.Errorw("entropy source failed", "source", cfg.Entropy.Source, "device", cfg.Entropy.Device, "error", err)
		return nil, nil, fmt.Errorf("error opening entropy source: %w", err)
	}
	log.Infow("entropy source ready", "source", cfg.Entropy.Source, "device", cfg.Entropy.Device)

	return deck.NewShuffler(src, nil, log), src, nil
}
