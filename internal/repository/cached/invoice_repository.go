package cached

import (
	"context"
	"strconv"
	"time"

	"github.com/frontandrew/garage/internal/domain"
	"github.com/frontandrew/garage/internal/pkg/logger"
	"github.com/frontandrew/garage/internal/repository"
)

const invoiceDetailCachePrefix = "invoice:detail:"

// InvoiceRepository добавляет кэширование деталей счета к invoice repository
type InvoiceRepository struct {
	repo  repository.InvoiceRepository
	store *store
}

// NewInvoiceRepository создает новый кэшируемый invoice repository
func NewInvoiceRepository(repo repository.InvoiceRepository, cache Cache, ttl time.Duration, log logger.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		repo:  repo,
		store: &store{cache: cache, ttl: ttl, logger: log},
	}
}

// Create создает счет в БД
func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	return r.repo.Create(ctx, invoice)
}

// GetByClientID получает счета клиента; списки не кэшируем
func (r *InvoiceRepository) GetByClientID(ctx context.Context, clientID int64) ([]*domain.Invoice, error) {
	return r.repo.GetByClientID(ctx, clientID)
}

// GetDetail получает детали счета (с кэшированием)
func (r *InvoiceRepository) GetDetail(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	return load(ctx, r.store, invoiceDetailCacheKey(id), func(ctx context.Context) (*domain.InvoiceDetail, error) {
		return r.repo.GetDetail(ctx, id)
	})
}

func invoiceDetailCacheKey(id int64) string {
	return invoiceDetailCachePrefix + strconv.FormatInt(id, 10)
}
