// Package main provides a command-line client for poking the game API
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var (
	serverAddr string
	playerID   string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "rpg-client",
	Short: "Game API client for testing the server",
}

var registerCmd = &cobra.Command{
	Use:   "register [name]",
	Short: "Register a new player",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		body := map[string]string{"id": playerID, "name": args[0]}
		return call(http.MethodPost, "/v1/players", body)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the player's current state",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(http.MethodGet, "/v1/player", nil)
	},
}

var exploreCmd = &cobra.Command{
	Use:   "explore [action]",
	Short: "Explore the current zone (pass 'boss' to challenge the zone boss)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		body := map[string]string{}
		if len(args) > 0 {
			body["action"] = args[0]
		}
		return call(http.MethodPost, "/v1/actions/explore", body)
	},
}

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Attack the current enemy",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(http.MethodPost, "/v1/actions/attack", nil)
	},
}

var gatherCmd = &cobra.Command{
	Use:   "gather [type]",
	Short: "Work a gathering spot (mining, foraging)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(http.MethodPost, "/v1/actions/gather", map[string]string{"type": args[0]})
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull [banner_id] [amount]",
	Short: "Summon from a gacha banner",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		amount := 1
		if len(args) > 1 {
			if _, err := fmt.Sscanf(args[1], "%d", &amount); err != nil {
				return fmt.Errorf("invalid amount: %s", args[1])
			}
		}
		body := map[string]any{"bannerId": args[0], "amount": amount}
		return call(http.MethodPost, "/v1/actions/gacha-pull", body)
	},
}

// call issues one API request and pretty-prints the JSON response.
func call(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, "http://"+serverAddr+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if playerID != "" {
		req.Header.Set("X-Player-ID", playerID)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Failed to close response body: %v", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		fmt.Println(string(data))
	} else {
		fmt.Println(pretty.String())
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:8080", "HTTP server address")
	rootCmd.PersistentFlags().StringVar(&playerID, "player", "", "acting player id")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(attackCmd)
	rootCmd.AddCommand(gatherCmd)
	rootCmd.AddCommand(pullCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
