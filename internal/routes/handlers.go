package routes

import (
	"net/http"

	"github.com/just-nibble/github-link/internal/adapters/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(ch *handlers.ConnectionHandler, cat *handlers.CatalogHandler, ph *handlers.ProjectHandler) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("POST /connections/authorize", ch.Authorize)
	router.HandleFunc("POST /connections/callback", ch.Callback)
	router.HandleFunc("GET /connections", ch.GetConnection)
	router.HandleFunc("DELETE /connections", ch.RemoveConnection)

	router.HandleFunc("GET /repositories", cat.ListRepositories)
	router.HandleFunc("GET /issues", cat.ListIssues)
	router.HandleFunc("GET /issues/detail", cat.GetIssue)
	router.HandleFunc("GET /issues/comments", cat.ListIssueComments)

	router.HandleFunc("POST /projects", ph.CreateProject)
	router.HandleFunc("GET /projects", ph.ListProjects)
	router.HandleFunc("PATCH /projects", ph.UpdateProject)
	router.HandleFunc("DELETE /projects", ph.DeleteProject)

	// Serve Swagger documentation
	router.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	return router
}
