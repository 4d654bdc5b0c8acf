//go:build !js
// +build !js

// Command desktop plays Ninja Slice in a native window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/simukka/ninja-slice/client"
	"github.com/simukka/ninja-slice/desktop"
	"github.com/simukka/ninja-slice/game"
)

func main() {
	mode := flag.String("mode", "casual", "Game mode: casual or ranked")
	seed := flag.Uint("seed", 0, "Run seed (0 picks one)")
	static := flag.String("static", "static", "Directory holding assets/")
	server := flag.String("server", "", "Leaderboard server URL for ranked submissions")
	user := flag.String("user", "", "User id sent with submissions")
	name := flag.String("name", "", "Username sent with submissions")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var m game.Mode
	switch *mode {
	case "casual":
		m = game.ModeCasual
	case "ranked":
		m = game.ModeRanked
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}

	opts := desktop.Options{
		Mode:      m,
		Seed:      uint32(*seed),
		StaticDir: *static,
		Logger:    logger,
	}
	if *server != "" {
		c := client.New(*server)
		c.UserID, c.Username = *user, *name
		opts.Client = c
	}

	if err := desktop.Run(desktop.New(opts)); err != nil {
		logger.Error("Game exited", "error", err)
		os.Exit(1)
	}
}
