// mesoforge-mcp serves the planning engine over MCP stdio against the local
// SQLite store, so an assistant can plan and track training offline.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/mesoforge/internal/mcp"
	"github.com/meltforce/mesoforge/internal/plan"
	"github.com/meltforce/mesoforge/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	storeDir := flag.String("store", defaultStoreDir(), "directory for the local store")
	flag.Parse()

	// Stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	store, err := storage.OpenLocalStore(*storeDir)
	if err != nil {
		log.Error("failed to open local store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	integrator := plan.NewIntegrator(store, log)
	s := mcp.New(store, integrator, Version, log)

	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mesoforge"
	}
	return fmt.Sprintf("%s/.mesoforge", home)
}
