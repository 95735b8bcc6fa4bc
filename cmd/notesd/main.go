// Command notesd is the reference notes backend: a JSON API over a bbolt
// file, or an in-memory store when no database path is given.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"noteboard/internal/logs"
	"noteboard/internal/server"
	"noteboard/internal/store"
)

const shutdownTimeout = 5 * time.Second

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("NOTESD_ADDR", ":5000"), "Listen address")
	dbPath := flag.String("db", os.Getenv("NOTESD_DB"), "bbolt database file (empty keeps notes in memory)")
	flag.Parse()

	logs.SetOutput(os.Stderr)

	if err := run(*addr, *dbPath); err != nil {
		logs.Logger.Printf("notesd: %v", err)
		os.Exit(1)
	}
}

func run(addr, dbPath string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	srv := server.New(st)
	srv.RegisterFiberRoutes()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if dbPath == "" {
			logs.Logger.Printf("Listening on %s (in-memory store)", addr)
		} else {
			logs.Logger.Printf("Listening on %s (db %s)", addr, dbPath)
		}
		errCh <- srv.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logs.Logger.Println("Shutting down")
	if err := srv.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
