package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/frontandrew/garage/internal/domain"
	"github.com/frontandrew/garage/internal/pkg/logger"
	"github.com/frontandrew/garage/internal/repository"
	"github.com/go-playground/validator/v10"
)

// CreateInvoiceRequest - запрос на создание счета.
// Сумма не принимается: счет всегда создается с domain.DefaultInvoiceAmount.
type CreateInvoiceRequest struct {
	ClientID *int64  `json:"id_client" validate:"required,gt=0"`
	CarID    *int64  `json:"id_voiture" validate:"required,gt=0"`
	Date     *string `json:"date" validate:"required,datetime=2006-01-02"`
}

// Service содержит бизнес-логику работы со счетами
type Service struct {
	invoiceRepo  repository.InvoiceRepository
	validate     *validator.Validate
	queryTimeout time.Duration
	logger       logger.Logger
}

// NewService создает новый экземпляр InvoiceService
func NewService(invoiceRepo repository.InvoiceRepository, queryTimeout time.Duration, logger logger.Logger) *Service {
	return &Service{
		invoiceRepo:  invoiceRepo,
		validate:     validator.New(),
		queryTimeout: queryTimeout,
		logger:       logger,
	}
}

// CreateInvoice создает новый счет с нулевой суммой
func (s *Service) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*domain.Invoice, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrInvalidInvoiceData
	}

	amount := domain.DefaultInvoiceAmount
	invoice := &domain.Invoice{
		ClientID: *req.ClientID,
		CarID:    *req.CarID,
		Amount:   &amount,
		Date:     *req.Date,
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.logger.Info("Invoice created", map[string]interface{}{
		"invoice_id": invoice.ID,
		"client_id":  invoice.ClientID,
		"car_id":     invoice.CarID,
	})

	return invoice, nil
}

// GetInvoicesByClient возвращает счета клиента;
// пустой результат дает domain.ErrNoInvoicesForClient
func (s *Service) GetInvoicesByClient(ctx context.Context, clientID int64) ([]*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	invoices, err := s.invoiceRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoices of client %d: %w", clientID, err)
	}

	if len(invoices) == 0 {
		return nil, domain.ErrNoInvoicesForClient
	}

	return invoices, nil
}

// GetInvoiceDetail возвращает счет с клиентом, автомобилем и ремонтами
func (s *Service) GetInvoiceDetail(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	detail, err := s.invoiceRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %d: %w", id, err)
	}
	return detail, nil
}
