package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nerdlin/nerdlin-contrib-art/internal/config"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	versionInfo := config.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	app := NewDefaultApp(versionInfo)

	if err := app.Config.ParseFlags(); err != nil {
		_, _ = fmt.Fprintf(app.Stderr, "❌ Error: %v\n", err)
		app.exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-c
		fmt.Printf("\nReceived signal %v, stopping contribart...\n", sig)

		// Cancel the context; the painter stops between commits and
		// whatever was already committed stays in history
		cancel()
	}()

	if err := app.Run(ctx); err != nil {
		// Don't treat context cancellation as an error since that's our normal signal shutdown path
		if err.Error() != "context canceled" {
			_, _ = fmt.Fprintf(app.Stderr, "❌ Error: %v\n", err)
			_ = app.Close()
			app.exit(1)
		}
	}

	// Print the session summary only after an apply run
	if !app.Config.Version && !app.Config.ShowLogo && app.Config.Apply && app.Painter != nil {
		app.Painter.PrintSummary()
	}
	_ = app.Close()
}
