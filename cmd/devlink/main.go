package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devlink-app/devlink/internal/auth"
	"github.com/devlink-app/devlink/internal/config"
	"github.com/devlink-app/devlink/internal/github"
	httpapp "github.com/devlink-app/devlink/internal/http"
	"github.com/devlink-app/devlink/internal/rate"
	"github.com/devlink-app/devlink/internal/store/sqlite"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-h", "--help", "help":
			printUsage()
			return
		case "-v", "--version", "version":
			fmt.Println("devlink v0.1.0")
			return
		}
	}
	runServer()
}

func printUsage() {
	fmt.Println(`devlink - developer social network server

Usage: devlink [command]

Commands:
  (none)              Start the devlink server
  version             Print version

Environment Variables:
  DEVLINK_ADDR               Listen address (default: :8080)
  DEVLINK_DB                 Database path (default: devlink.db)
  DEVLINK_JWT_SECRET         Token signing secret
  DEVLINK_TOKEN_TTL          Token lifetime (default: 100h)
  DEVLINK_GITHUB_CLIENT_ID   GitHub API client id (optional)
  DEVLINK_GITHUB_SECRET      GitHub API client secret (optional)`)
}

func runServer() {
	cfg := config.Load()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer store.Close()

	limiter := rate.NewMemory()
	authSvc := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	gh := github.NewClient(cfg.GithubClientID, cfg.GithubSecret)

	server := httpapp.NewServer(store, authSvc, limiter, gh, cfg)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("devlink listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
}
