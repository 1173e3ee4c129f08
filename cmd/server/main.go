package main

import (
	"log"
	"net/http"

	"github.com/Ahsanulk27/collab-flow/internal/repository/postgres"
)

func main() {
	app, cleanup, err := InitializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer cleanup()

	if err := postgres.RunMigrations(app.Config.PostgresURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Run the hub's event loop on its own goroutine.
	go app.Hub.Run()

	addr := ":" + app.Config.Port
	log.Printf("Server starting on %s", addr)
	if err := http.ListenAndServe(addr, app.Router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
