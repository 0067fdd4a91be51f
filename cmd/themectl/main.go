// Command themectl reads and changes the landing page theme from a
// terminal. The last known theme is cached on disk so `current` answers
// even when the server is unreachable.
//
// Usage:
//
//	themectl [flags] list
//	themectl [flags] current
//	themectl [flags] set <theme>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"vslsite/internal/session"
	"vslsite/internal/theme"
	"vslsite/internal/themesync"
)

var errUsage = errors.New("usage: themectl [flags] list | current | set <theme>")

func main() {
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	server := flag.String("server", envOrDefault("VSLSITE_SERVER", "http://localhost:8080"), "base URL of the site")
	sessionID := flag.String("session", os.Getenv("VSLSITE_SESSION"), "admin session id ("+session.CookieName+" cookie), required for set")
	prefsPath := flag.String("prefs", themesync.DefaultPreferencesPath(), "local theme cache file")
	timeout := flag.Duration("timeout", 10*time.Second, "how long to wait for the server")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	syncer := themesync.New(
		themesync.NewHTTPRemote(*server, *sessionID),
		themesync.NewFilePreferences(*prefsPath),
	)

	if err := run(ctx, syncer, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, syncer *themesync.Synchronizer, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "list":
		if len(args) != 1 {
			return errUsage
		}
		current := startAndWait(ctx, syncer)
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, t := range theme.List() {
			marker := " "
			if t.ID == current {
				marker = "*"
			}
			fmt.Fprintf(tw, "%s %s\t%s\t%s\n", marker, t.ID, t.Label, t.Description)
		}
		return tw.Flush()

	case "current":
		if len(args) != 1 {
			return errUsage
		}
		fmt.Println(startAndWait(ctx, syncer))
		return nil

	case "set":
		if len(args) != 2 {
			return errUsage
		}
		startAndWait(ctx, syncer)
		if err := syncer.SetTheme(ctx, args[1]); err != nil {
			return fmt.Errorf("set theme: %w (valid: %v)", err, theme.IDs())
		}
		if err := syncer.Wait(); err != nil {
			return fmt.Errorf("theme applied locally but not saved on the server: %w", err)
		}
		fmt.Println(syncer.Current())
		return nil

	default:
		return errUsage
	}
}

// startAndWait starts the synchronizer and waits for the initial fetch,
// giving up when ctx expires. It returns the theme in effect.
func startAndWait(ctx context.Context, syncer *themesync.Synchronizer) string {
	syncer.Start(ctx)
	select {
	case <-syncer.Ready():
	case <-ctx.Done():
		slog.Warn("timed out waiting for server", "error", ctx.Err())
	}
	return syncer.Current()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
