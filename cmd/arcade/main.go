// arcade runs the pico arcade games in a terminal or a desktop window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play one game until it is exited
//	arcade menu              - Start the game picker
//
// Global flags:
//
//	--backend <tui|window>  - Where to show the display (default: tui)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--width, --height       - Logical display size (default: 320x240)
//	--scale <n>             - Window pixel scale (default: 3)
//	--log-level <level>     - debug, info, warn, error (default: warn)
//	--log-file <path>       - Write logs to a file instead of stderr
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/engine"
	"github.com/vovakirdan/pico-arcade/internal/platform/tui"
	"github.com/vovakirdan/pico-arcade/internal/platform/window"

	// Import games to register them
	_ "github.com/vovakirdan/pico-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/pico-arcade/internal/games/starcatcher"
)

const (
	backendTUI    = "tui"
	backendWindow = "window"
)

var (
	// Global flags
	flagSeed     int64
	flagBackend  string
	flagWidth    int
	flagHeight   int
	flagScale    int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pico Arcade - Breakout and Star Catcher for four buttons",
	Long: `Pico Arcade runs small button-driven arcade games on a 320x240
logical display, shown either in the terminal or in a desktop window.

Buttons:
  A (a, enter)   - Start / confirm
  B (b, left)    - Move left / menu up
  Y (y, right)   - Move right / menu down
  X (x, esc)     - Double-press to exit a game

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker

Examples:
  arcade list
  arcade play breakout
  arcade play star_catcher --backend window --scale 2
  arcade menu --log-level debug --log-file arcade.log`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", backendTUI, "Display backend: tui or window")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", core.DefaultConfig().ScreenW, "Logical display width in pixels")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", core.DefaultConfig().ScreenH, "Logical display height in pixels")
	rootCmd.PersistentFlags().IntVar(&flagScale, "scale", 3, "Window pixel scale")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}

// runtimeConfig builds the per-game runtime config from the global flags.
func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: flagWidth,
		ScreenH: flagHeight,
		Seed:    flagSeed,
	}
}

// newLogger creates the process logger. The returned closer releases the
// log file, if one was opened.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closer, nil
}

// runHost runs host on the selected backend until it finishes, the user
// quits, or the process is interrupted.
func runHost(ctx context.Context, logger *log.Logger, host engine.Host) error {
	if flagWidth <= 0 || flagHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", flagWidth, flagHeight)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting backend", "backend", flagBackend, "width", flagWidth, "height", flagHeight)

	switch flagBackend {
	case backendTUI:
		termW, termH := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			termW, termH = w, h
		}
		return tui.Run(ctx, tui.Options{
			Width:      flagWidth,
			Height:     flagHeight,
			TermWidth:  termW,
			TermHeight: termH,
		}, host)

	case backendWindow:
		return window.Run(ctx, window.Options{
			Width:  flagWidth,
			Height: flagHeight,
			Scale:  flagScale,
			Title:  "Pico Arcade",
		}, host)
	}

	return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTUI, backendWindow)
}
