package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Lists every key the game responds to.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(_ *cobra.Command, _ []string) {
	km := tui.DefaultKeyMap()

	fmt.Println("Key bindings:")
	fmt.Println()

	for _, group := range km.FullHelp() {
		for _, b := range group {
			fmt.Printf("  %-12s %s\n", strings.Join(b.Keys(), "/"), b.Help().Desc)
		}
	}
}
