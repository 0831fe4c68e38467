package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wordweaver-ai/wordweaver/internal/client"
	"github.com/wordweaver-ai/wordweaver/internal/tui"
)

func main() {
	server := flag.String("server", envOr("WORDWEAVER_SERVER", "http://localhost:8080"), "base URL of the caption server")
	timeout := flag.Duration("timeout", 2*time.Minute, "request timeout, 0 for none")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	c := client.New(*server, client.Options{Timeout: *timeout})
	p := tea.NewProgram(tui.New(ctx, c, nil), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Fatalf("client error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
