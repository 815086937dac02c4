package postgres

import (
	"context"
	"errors"

	"github.com/frontandrew/garage/internal/domain"
	"github.com/frontandrew/garage/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `id_client, nom, prenom, telephone, mel, adresse, code_postal, ville`

type clientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO client (nom, prenom, telephone, mel, adresse, code_postal, ville)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_client
	`

	err := r.db.QueryRow(ctx, query,
		client.LastName,
		client.FirstName,
		client.Phone,
		client.Email,
		client.Address,
		client.PostalCode,
		client.City,
	).Scan(&client.ID)

	return translateError(err)
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM client WHERE id_client = $1`

	client, err := scanClient(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM client`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	client := &domain.Client{}
	err := row.Scan(
		&client.ID,
		&client.LastName,
		&client.FirstName,
		&client.Phone,
		&client.Email,
		&client.Address,
		&client.PostalCode,
		&client.City,
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}
