package cached

import (
	"context"
	"strconv"
	"time"

	"github.com/frontandrew/garage/internal/domain"
	"github.com/frontandrew/garage/internal/pkg/logger"
	"github.com/frontandrew/garage/internal/repository"
)

const clientCachePrefix = "client:"

// ClientRepository добавляет кэширование GetByID к client repository.
// Клиенты в API не изменяются, поэтому инвалидация по TTL.
type ClientRepository struct {
	repo  repository.ClientRepository
	store *store
}

// NewClientRepository создает новый кэшируемый client repository
func NewClientRepository(repo repository.ClientRepository, cache Cache, ttl time.Duration, log logger.Logger) *ClientRepository {
	return &ClientRepository{
		repo:  repo,
		store: &store{cache: cache, ttl: ttl, logger: log},
	}
}

// Create создает клиента в БД
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	return r.repo.Create(ctx, client)
}

// GetByID получает клиента по ID (с кэшированием)
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return load(ctx, r.store, clientCacheKey(id), func(ctx context.Context) (*domain.Client, error) {
		return r.repo.GetByID(ctx, id)
	})
}

// List получает всех клиентов; списки не кэшируем
func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	return r.repo.List(ctx)
}

func clientCacheKey(id int64) string {
	return clientCachePrefix + strconv.FormatInt(id, 10)
}
