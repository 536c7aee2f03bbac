package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pico-arcade/internal/engine"
	"github.com/vovakirdan/pico-arcade/internal/launcher"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in menu mode.

B and Y move the selection, A starts the highlighted game. Exiting a game
with a double press of X returns to the menu. If a game fails, an error
screen is shown until A is pressed.

Examples:
  arcade menu
  arcade menu --backend window
  arcade menu --seed 42`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	checkConfigs(logger)

	rt := runtimeConfig()
	return runHost(cmd.Context(), logger, func(ctx context.Context, dev engine.Devices) error {
		l := launcher.New(dev, launcher.Config{Runtime: rt}, logger)
		return l.Run(ctx)
	})
}
