// Command kaleido-server serves the Kaleido Stitch web form and JSON API.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wizard-wizard/kaleido-stitch/internal/config"
	"github.com/wizard-wizard/kaleido-stitch/internal/server"
	"github.com/wizard-wizard/kaleido-stitch/internal/version"
)

var (
	listen     = flag.String("listen", "", "Listen address (default :8080, or :$PORT)")
	configPath = flag.String("config", "", "Optional JSON defaults file")
)

func main() {
	flag.Parse()

	addr := *listen
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}

	cfg := config.Empty()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	srv, err := server.NewServer(addr, cfg)
	if err != nil {
		log.Fatalf("create server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("kaleido-server %s (%s)", version.Version, version.GitSHA)
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
