package http

import (
	"net/http"

	"github.com/frontandrew/garage/internal/delivery/http/middleware"
	"github.com/frontandrew/garage/internal/pkg/config"
	"github.com/frontandrew/garage/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	clientHandler  *ClientHandler
	invoiceHandler *InvoiceHandler
	healthHandler  *HealthHandler
	config         *config.Config
	logger         logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(
	clientHandler *ClientHandler,
	invoiceHandler *InvoiceHandler,
	healthHandler *HealthHandler,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		clientHandler:  clientHandler,
		invoiceHandler: invoiceHandler,
		healthHandler:  healthHandler,
		config:         config,
		logger:         logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware; CORS до recovery, чтобы заголовки были и у ответов 500
	r.Use(middleware.AssignRequestID)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.EchoRequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: rt.config.CORS.AllowedOrigins,
		AllowedMethods: rt.config.CORS.AllowedMethods,
		AllowedHeaders: rt.config.CORS.AllowedHeaders,
	}))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.RecoveryMiddleware(rt.logger, rt.config.App.Debug))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, http.StatusNotFound, msgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	r.Get("/", GetDocs)
	r.Get("/health", rt.healthHandler.Health)

	r.Get("/clients", rt.clientHandler.ListClients)
	r.Post("/clients", rt.clientHandler.CreateClient)
	r.Get("/clients/{id}", rt.clientHandler.GetClientByID)

	r.Get("/factures", rt.invoiceHandler.ListInvoices)
	r.Post("/factures", rt.invoiceHandler.CreateInvoice)
	r.Get("/factures/{id}", rt.invoiceHandler.GetInvoiceByID)

	return r
}
