package repository

import (
	"context"

	"github.com/frontandrew/garage/internal/domain"
)

// ClientRepository определяет методы для работы с клиентами
type ClientRepository interface {
	// Create создает нового клиента и заполняет client.ID
	Create(ctx context.Context, client *domain.Client) error

	// GetByID возвращает клиента по ID
	GetByID(ctx context.Context, id int64) (*domain.Client, error)

	// List возвращает всех клиентов
	List(ctx context.Context) ([]*domain.Client, error)
}

// InvoiceRepository определяет методы для работы со счетами
type InvoiceRepository interface {
	// Create создает новый счет и заполняет invoice.ID
	Create(ctx context.Context, invoice *domain.Invoice) error

	// GetByClientID возвращает все счета клиента
	GetByClientID(ctx context.Context, clientID int64) ([]*domain.Invoice, error)

	// GetDetail возвращает счет с клиентом, автомобилем и ремонтами
	GetDetail(ctx context.Context, id int64) (*domain.InvoiceDetail, error)
}
