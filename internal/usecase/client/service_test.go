package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/frontandrew/garage/internal/domain"
	"github.com/frontandrew/garage/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClientRepository - мок для repository.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

func strPtr(s string) *string { return &s }

func newTestService(repo *MockClientRepository) *Service {
	return NewService(repo, time.Second, logger.NewNoop())
}

func TestService_CreateClient(t *testing.T) {
	tests := []struct {
		name      string
		req       *CreateClientRequest
		mockSetup func(*MockClientRepository)
		wantErr   error
		check     func(*testing.T, *domain.Client)
	}{
		{
			name: "все поля",
			req: &CreateClientRequest{
				LastName:   strPtr("Dupont"),
				FirstName:  strPtr("Jean"),
				Phone:      strPtr("0123456789"),
				Email:      strPtr("jean.dupont@email.com"),
				Address:    strPtr("123 rue Example"),
				PostalCode: strPtr("75000"),
				City:       strPtr("Paris"),
			},
			mockSetup: func(m *MockClientRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.Client).ID = 12
					}).
					Return(nil)
			},
			check: func(t *testing.T, c *domain.Client) {
				assert.Equal(t, int64(12), c.ID)
				assert.Equal(t, "Dupont", c.LastName)
				assert.Equal(t, "Paris", *c.City)
			},
		},
		{
			name: "только обязательные поля - остальные NULL",
			req:  &CreateClientRequest{LastName: strPtr("Martin"), FirstName: strPtr("")},
			mockSetup: func(m *MockClientRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
					return c.Phone == nil && c.Email == nil && c.Address == nil &&
						c.PostalCode == nil && c.City == nil && c.FirstName == ""
				})).Return(nil)
			},
			check: func(t *testing.T, c *domain.Client) {
				assert.Nil(t, c.Phone)
				assert.Nil(t, c.City)
			},
		},
		{
			name:      "нет nom",
			req:       &CreateClientRequest{FirstName: strPtr("Jean")},
			mockSetup: func(m *MockClientRepository) {},
			wantErr:   domain.ErrInvalidClientData,
		},
		{
			name:      "пустой запрос",
			req:       &CreateClientRequest{},
			mockSetup: func(m *MockClientRepository) {},
			wantErr:   domain.ErrInvalidClientData,
		},
		{
			name: "ошибка БД",
			req:  &CreateClientRequest{LastName: strPtr("Dupont"), FirstName: strPtr("Jean")},
			mockSetup: func(m *MockClientRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockClientRepository)
			tt.mockSetup(repo)

			client, err := newTestService(repo).CreateClient(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				tt.check(t, client)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestService_GetClientByID(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Client{ID: 1, LastName: "Dupont"}, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, domain.ErrClientNotFound)

	svc := newTestService(repo)

	client, err := svc.GetClientByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Dupont", client.LastName)

	_, err = svc.GetClientByID(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestService_ListClients(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("List", mock.Anything).Return([]*domain.Client{}, nil)

	clients, err := newTestService(repo).ListClients(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestService_AppliesQueryTimeout(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("List", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return([]*domain.Client{}, nil)

	_, err := newTestService(repo).ListClients(context.Background())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
