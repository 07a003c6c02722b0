package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	sqliteadapter "github.com/ericfisherdev/watchlist/internal/adapter/driven/sqlite"
	webhandler "github.com/ericfisherdev/watchlist/internal/adapter/driving/web"
	"github.com/ericfisherdev/watchlist/internal/application"
	"github.com/ericfisherdev/watchlist/internal/config"
)

func main() {
	cmd := "serve"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd = args[0]
		args = args[1:]
	}

	var err error
	switch cmd {
	case "serve":
		err = runServe()
	case "initdb":
		err = runInitDB(args)
	case "forge":
		err = runForge()
	case "admin":
		err = runAdmin(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `usage: watchlist [command]

Commands:
  serve    start the web server (default)
  initdb   create the database tables (--drop recreates them)
  forge    insert sample entries
  admin    create or update the admin account
`)
}

func runServe() error {
	// 1. Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"session_ttl", cfg.SessionTTL,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath)

	// 4. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	slog.Info("migrations complete")

	// 5. Wire adapters and services.
	accounts := application.NewAccount(sqliteadapter.NewIdentityRepo(db))
	catalog := application.NewCatalog(sqliteadapter.NewMovieRepo(db))
	board := application.NewBoard(sqliteadapter.NewMessageRepo(db))
	sessions := application.NewSessions(accounts, cfg.SessionTTL)

	// 6. Create web handler and routes.
	handler := webhandler.NewHandler(catalog, accounts, sessions, board, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           webhandler.NewServeMux(handler, slog.Default()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	// 7. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

func runInitDB(args []string) error {
	fs := flag.NewFlagSet("initdb", flag.ExitOnError)
	drop := fs.Bool("drop", false, "drop existing tables before creating them")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := sqliteadapter.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if *drop {
		if err := sqliteadapter.DropAll(db.Writer); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
		fmt.Println("Dropped tables.")
	}

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	fmt.Println("Initialized database.")
	return nil
}

func runForge() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := sqliteadapter.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}

	ctx := context.Background()
	identities := sqliteadapter.NewIdentityRepo(db)
	movies := sqliteadapter.NewMovieRepo(db)
	if err := application.SeedSampleData(ctx, identities, movies); err != nil {
		return err
	}
	fmt.Println("Done.")
	return nil
}

func runAdmin(args []string) error {
	fs := flag.NewFlagSet("admin", flag.ExitOnError)
	username := fs.String("username", "", "the username used to login")
	password := fs.String("password", "", "the password used to login (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		name, err := promptLine("Username: ")
		if err != nil {
			return err
		}
		*username = name
	}
	if *username == "" {
		return errors.New("username must not be empty")
	}

	if *password == "" {
		pass, err := promptPassword()
		if err != nil {
			return err
		}
		*password = pass
	}
	if *password == "" {
		return errors.New("password must not be empty")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := sqliteadapter.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}

	ctx := context.Background()
	accounts := application.NewAccount(sqliteadapter.NewIdentityRepo(db))

	created, err := accounts.UpsertAdmin(ctx, *username, *password)
	if err != nil {
		return err
	}
	if created {
		fmt.Println("Creating user.")
	} else {
		fmt.Println("Updating user.")
	}
	fmt.Println("Done.")
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads the password twice without echo and requires both
// entries to match.
func promptPassword() (string, error) {
	fmt.Print("Password: ")
	first, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Print("Repeat for confirmation: ")
	second, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
