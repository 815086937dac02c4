package client

import (
	"context"
	"fmt"
	"time"

	"github.com/frontandrew/garage/internal/domain"
	"github.com/frontandrew/garage/internal/pkg/logger"
	"github.com/frontandrew/garage/internal/repository"
	"github.com/go-playground/validator/v10"
)

// CreateClientRequest - запрос на создание клиента.
// nom и prenom обязательны (null считается отсутствием), остальное - NULL, если не передано.
type CreateClientRequest struct {
	LastName   *string `json:"nom" validate:"required"`
	FirstName  *string `json:"prenom" validate:"required"`
	Phone      *string `json:"telephone,omitempty"`
	Email      *string `json:"mel,omitempty"`
	Address    *string `json:"adresse,omitempty"`
	PostalCode *string `json:"code_postal,omitempty"`
	City       *string `json:"ville,omitempty"`
}

// Service содержит бизнес-логику работы с клиентами
type Service struct {
	clientRepo   repository.ClientRepository
	validate     *validator.Validate
	queryTimeout time.Duration
	logger       logger.Logger
}

// NewService создает новый экземпляр ClientService
func NewService(clientRepo repository.ClientRepository, queryTimeout time.Duration, logger logger.Logger) *Service {
	return &Service{
		clientRepo:   clientRepo,
		validate:     validator.New(),
		queryTimeout: queryTimeout,
		logger:       logger,
	}
}

// CreateClient создает нового клиента
func (s *Service) CreateClient(ctx context.Context, req *CreateClientRequest) (*domain.Client, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrInvalidClientData
	}

	client := &domain.Client{
		LastName:   *req.LastName,
		FirstName:  *req.FirstName,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.logger.Info("Client created", map[string]interface{}{
		"client_id": client.ID,
	})

	return client, nil
}

// GetClientByID возвращает клиента по ID
func (s *Service) GetClientByID(ctx context.Context, id int64) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %d: %w", id, err)
	}
	return client, nil
}

// ListClients возвращает всех клиентов
func (s *Service) ListClients(ctx context.Context) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}
