package main

import (
	"log"
	"net/http"

	"github.com/just-nibble/github-link/internal/adapters/api"
	"github.com/just-nibble/github-link/internal/adapters/db"
	"github.com/just-nibble/github-link/internal/adapters/http/handlers"
	"github.com/just-nibble/github-link/internal/adapters/storage"
	"github.com/just-nibble/github-link/internal/core/service"
	"github.com/just-nibble/github-link/internal/routes"
	"github.com/just-nibble/github-link/pkg/config"
)

func main() {
	// Initialize the database
	gormDB := storage.InitDB()

	// Create the stores
	connectionStore := db.NewGormConnectionStore(gormDB)
	projectStore := db.NewGormProjectStore(gormDB)

	// Initialize the GitHub and OAuth clients
	cfg := config.Load()
	gc := api.NewGitHubClient()
	oc := api.NewOAuthClient(cfg)

	// Create the services
	connections := service.NewConnectionService(connectionStore, oc, gc)
	catalog := service.NewCatalogService(connections, gc)
	projects := service.NewProjectService(projectStore)

	// Set up HTTP routes
	router := routes.NewRouter(
		handlers.NewConnectionHandler(connections),
		handlers.NewCatalogHandler(connections, catalog),
		handlers.NewProjectHandler(projects),
	)

	// Start the HTTP server
	log.Println("Server is running on port 8080")
	if err := http.ListenAndServe(":8080", router); err != nil {
		log.Fatalf("Could not start server: %s", err)
	}
}
