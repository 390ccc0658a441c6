package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Shows the keys used to steer and quit. Both frontends use the same keys.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(_ *cobra.Command, _ []string) {
	km := tui.DefaultKeyMap()
	h := help.New()

	fmt.Println("Key bindings:")
	fmt.Println()
	fmt.Println(h.FullHelpView(km.FullHelp()))
	fmt.Println()
	fmt.Println("Reversing straight into the snake's neck is ignored.")
}
