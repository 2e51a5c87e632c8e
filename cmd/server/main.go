// Package main is the entry point for the game server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-core",
	Short: "Browser RPG simulation engine",
	Long:  `rpg-core serves the RPG game engine over a JSON HTTP API: exploration, combat, gathering, gacha summons, daily quests, and the item economy.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
