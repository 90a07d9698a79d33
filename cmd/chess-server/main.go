// Package main implements the chess API server: the same board, move,
// undo, and save/load operations as the console, over HTTP.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chess/internal/service"
	"chess/internal/storage"
	"chess/internal/transport/http"
)

const gracefulShutdownTimeout = 5 * time.Second

func main() {
	var (
		host        = flag.String("host", "localhost", "API server host")
		port        = flag.Int("port", 8080, "API server port")
		dev         = flag.Bool("dev", false, "Development mode (relaxed rate limits)")
		storagePath = flag.String("storage-path", "", "Path to SQLite database file (disables persistence if empty)")
	)
	flag.Parse()

	var store *storage.Store
	if *storagePath != "" {
		log.Printf("Initializing persistent storage at: %s", *storagePath)
		var err error
		store, err = storage.NewStore(*storagePath)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		if err := store.InitDB(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
	}

	svc := service.New(store)
	defer svc.Close()

	app := http.NewFiberApp(svc, *dev)

	addr := fmt.Sprintf("%s:%d", *host, *port)
	go func() {
		log.Printf("API server listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Println("Shutting down...")
	if err := app.ShutdownWithTimeout(gracefulShutdownTimeout); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
