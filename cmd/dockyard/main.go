package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/dockyard/internal/config"
	"github.com/jask/dockyard/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(cfg.State.Dir, 0o755); err != nil {
		log.Fatalf("mkdir state dir: %v", err)
	}

	// Logs go to a file; stdout belongs to the terminal UI.
	closeLog := setupLogging(cfg.LogPath())
	defer closeLog()

	w := tui.New(cfg)
	p := tea.NewProgram(w, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}

	// Shutdown flush: any debounced save still pending is written
	// before exit, and failure is the one save error worth surfacing.
	if err := w.Scheduler().Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "layout save failed: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(path string) func() {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { f.Close() }
}
