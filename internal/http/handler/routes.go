package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"crmapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; validation and error mapping live
// in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, log *zap.Logger, clientSvc service.ClientService, docSvc service.DocumentService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/clients", ListClients(log, clientSvc))
	app.Post("/clients", CreateClient(log, clientSvc))
	app.Get("/clients/:id", GetClient(log, clientSvc))
	app.Put("/clients/:id", UpdateClient(log, clientSvc))
	app.Delete("/clients/:id", DeleteClient(log, clientSvc))

	app.Get("/documents", ListDocuments(log, docSvc))
	app.Post("/documents", CreateDocument(log, docSvc))
	app.Get("/documents/:id", GetDocument(log, docSvc))
	app.Put("/documents/:id", UpdateDocument(log, docSvc))
	app.Delete("/documents/:id", DeleteDocument(log, docSvc))
}
