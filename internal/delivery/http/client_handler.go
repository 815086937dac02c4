package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/frontandrew/garage/internal/domain"
	"github.com/frontandrew/garage/internal/pkg/logger"
	"github.com/frontandrew/garage/internal/usecase/client"
)

const (
	msgClientNotFound    = "Client non trouvé"
	msgClientCreated     = "Client ajouté"
	msgClientMissingData = "Données manquantes pour 'nom' ou 'prenom'"
)

// ClientService определяет интерфейс для сервиса клиентов
type ClientService interface {
	CreateClient(ctx context.Context, req *client.CreateClientRequest) (*domain.Client, error)
	GetClientByID(ctx context.Context, id int64) (*domain.Client, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)
}

// ClientHandler обрабатывает запросы связанные с клиентами
type ClientHandler struct {
	clientService ClientService
	responder
}

// NewClientHandler создает новый handler
func NewClientHandler(clientService ClientService, logger logger.Logger, debug bool) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		responder:     responder{logger: logger, debug: debug},
	}
}

// ListClients возвращает всех клиентов
// GET /clients
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.ListClients(r.Context())
	if err != nil {
		h.internalError(w, r, err, "Failed to list clients")
		return
	}

	respondJSON(w, http.StatusOK, clients)
}

// GetClientByID возвращает клиента по ID
// GET /clients/{id}
func (h *ClientHandler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondMessage(w, http.StatusNotFound, msgClientNotFound)
		return
	}

	c, err := h.clientService.GetClientByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			respondMessage(w, http.StatusNotFound, msgClientNotFound)
			return
		}
		h.internalError(w, r, err, "Failed to get client")
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// CreateClient создает нового клиента
// POST /clients
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, errInvalidFieldType) {
			respondError(w, http.StatusBadRequest, msgClientMissingData)
			return
		}
		respondError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	c, err := h.clientService.CreateClient(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidClientData) {
			respondError(w, http.StatusBadRequest, msgClientMissingData)
			return
		}
		h.internalError(w, r, err, "Failed to create client")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   msgClientCreated,
		"id_client": c.ID,
	})
}
