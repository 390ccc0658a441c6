// snake is a grid Snake game for the terminal or a desktop window.
//
// Usage:
//
//	snake                - Play in the terminal (same as "snake play")
//	snake play           - Play in the terminal
//	snake window         - Play in a desktop window
//	snake config         - Print the effective configuration
//	snake keys           - Show key bindings
//
// Global flags:
//
//	--seed <value>       - RNG seed (0 = system entropy)
//	--config <path>      - Path to a snake YAML config
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat, grow, don't bite yourself",
	Long: `Snake on a 30x20 wrapping grid. The snake moves 8 cells per second,
grows by one when it eats, and the game ends when it runs into itself.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print the effective configuration
  keys     - Show key bindings

Examples:
  snake
  snake window
  snake play --seed 42
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = system entropy)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}

// session holds what every game command needs.
type session struct {
	cfg      config.SnakeConfig
	game     *snake.Game
	logger   *log.Logger
	closeLog func()
}

// newSession loads the configuration, acquires the seed and builds the game.
// A failure to read seed entropy is fatal.
//
// When quiet is set and logs would go to stderr, the level is raised to
// warn so log lines do not tear through a full-screen terminal UI.
func newSession(quiet bool) (*session, error) {
	logger, closeLog, err := newLogger(quiet)
	if err != nil {
		return nil, err
	}

	cfg, src, err := config.LoadSnake(flagConfig)
	if err != nil {
		closeLog()
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed, err = snake.NewSeed()
		if err != nil {
			closeLog()
			return nil, err
		}
	}

	logger.Info("starting",
		"config", src,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"tps", cfg.Timing.TicksPerSecond,
		"seed", seed,
	)

	return &session{
		cfg:      cfg,
		game:     snake.New(cfg, seed, snake.WithLogger(logger)),
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

// finish reports how the game ended.
func (s *session) finish(gameOver bool) {
	if gameOver {
		fmt.Println(snake.GameOverMessage)
	} else {
		s.logger.Info("quit", "length", len(s.game.Body())+1)
	}
	s.closeLog()
}

// newLogger builds the process logger from the global flags.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := os.Stderr
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	} else if quiet && level < log.WarnLevel {
		level = log.WarnLevel
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}
