package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/infrastructure/config"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/server"
)

func main() {
	port := flag.String("port", "", "Status API port (overrides PORT)")
	manifestPath := flag.String("manifest", "", "Service manifest path (overrides MANIFEST_PATH)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *manifestPath != "" {
		cfg.Init.ManifestPath = *manifestPath
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := srv.Boot(); err != nil {
		// Partially started services are reclaimed before exiting.
		_ = srv.Close()
		log.Fatalf("Boot failed: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		_ = srv.Close()
		log.Fatalf("Server error: %v", err)
	}
}
