package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/frontandrew/garage/internal/domain"
	"github.com/frontandrew/garage/internal/pkg/logger"
	"github.com/frontandrew/garage/internal/usecase/invoice"
)

const (
	msgClientIDRequired        = "Paramètre client_id requis"
	msgNoInvoicesForClient     = "Aucune facture trouvée pour ce client"
	msgInvoiceNotFound         = "Facture non trouvée"
	msgInvoiceCreated          = "Facture ajoutée"
	msgInvoiceInvalidData      = "Données manquantes ou invalides pour 'id_client', 'id_voiture' ou 'date'"
	msgInvoiceUnknownReference = "Client ou voiture inexistant"
)

// InvoiceService определяет интерфейс для сервиса счетов
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req *invoice.CreateInvoiceRequest) (*domain.Invoice, error)
	GetInvoicesByClient(ctx context.Context, clientID int64) ([]*domain.Invoice, error)
	GetInvoiceDetail(ctx context.Context, id int64) (*domain.InvoiceDetail, error)
}

// InvoiceHandler обрабатывает запросы связанные со счетами
type InvoiceHandler struct {
	invoiceService InvoiceService
	responder
}

// NewInvoiceHandler создает новый handler
func NewInvoiceHandler(invoiceService InvoiceService, logger logger.Logger, debug bool) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		responder:      responder{logger: logger, debug: debug},
	}
}

// ListInvoices возвращает счета клиента
// GET /factures?client_id={id}
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	values, ok := r.URL.Query()["client_id"]
	if !ok || len(values) == 0 {
		respondMessage(w, http.StatusBadRequest, msgClientIDRequired)
		return
	}

	invoices, err := h.invoiceService.GetInvoicesByClient(r.Context(), coerceInt(values[0]))
	if err != nil {
		if errors.Is(err, domain.ErrNoInvoicesForClient) {
			respondMessage(w, http.StatusNotFound, msgNoInvoicesForClient)
			return
		}
		h.internalError(w, r, err, "Failed to list invoices")
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}

// CreateInvoice создает новый счет с нулевой суммой
// POST /factures
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, errInvalidFieldType) {
			respondError(w, http.StatusBadRequest, msgInvoiceInvalidData)
			return
		}
		respondError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	inv, err := h.invoiceService.CreateInvoice(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInvoiceData):
			respondError(w, http.StatusBadRequest, msgInvoiceInvalidData)
		case errors.Is(err, domain.ErrUnknownReference):
			respondError(w, http.StatusBadRequest, msgInvoiceUnknownReference)
		default:
			h.internalError(w, r, err, "Failed to create invoice")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":    msgInvoiceCreated,
		"id_facture": inv.ID,
	})
}

// GetInvoiceByID возвращает счет с клиентом, автомобилем и ремонтами
// GET /factures/{id}
func (h *InvoiceHandler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondMessage(w, http.StatusNotFound, msgInvoiceNotFound)
		return
	}

	detail, err := h.invoiceService.GetInvoiceDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			respondMessage(w, http.StatusNotFound, msgInvoiceNotFound)
			return
		}
		h.internalError(w, r, err, "Failed to get invoice")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}
