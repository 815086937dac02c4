package postgres

import (
	"context"

	"github.com/frontandrew/garage/internal/domain"
	"github.com/frontandrew/garage/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type invoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	query := `
		INSERT INTO facture (client_id, voiture_id, montant, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id_facture
	`

	err := r.db.QueryRow(ctx, query,
		invoice.ClientID,
		invoice.CarID,
		invoice.Amount,
		invoice.Date,
	).Scan(&invoice.ID)

	return translateError(err)
}

func (r *invoiceRepository) GetByClientID(ctx context.Context, clientID int64) ([]*domain.Invoice, error) {
	query := `
		SELECT id_facture, client_id, voiture_id, montant::float8, date::text
		FROM facture
		WHERE client_id = $1
	`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		invoice := &domain.Invoice{}
		err := rows.Scan(
			&invoice.ID,
			&invoice.ClientID,
			&invoice.CarID,
			&invoice.Amount,
			&invoice.Date,
		)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	return invoices, rows.Err()
}

// GetDetail выполняет один запрос с JOIN по клиенту и автомобилю
// и LEFT JOIN по ремонтам; строки без ремонтов дают пустой список
func (r *invoiceRepository) GetDetail(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	query := `
		SELECT
			f.id_facture, f.date::text, f.montant::float8,
			c.id_client, c.nom, c.mel, c.telephone,
			v.id_voiture, v.marque, v.modele, v.annee,
			tr.id_reparation, tr.description, tr.cout::float8, ftr.quantite
		FROM facture f
		JOIN client c ON f.client_id = c.id_client
		JOIN voiture v ON f.voiture_id = v.id_voiture
		LEFT JOIN facture_type_reparation ftr ON f.id_facture = ftr.id_facture
		LEFT JOIN type_reparation tr ON ftr.id_reparation = tr.id_reparation
		WHERE f.id_facture = $1
		ORDER BY tr.id_reparation
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var detailRows []invoiceDetailRow
	for rows.Next() {
		var row invoiceDetailRow
		err := rows.Scan(
			&row.InvoiceID,
			&row.Date,
			&row.Amount,
			&row.ClientID,
			&row.ClientLastName,
			&row.ClientEmail,
			&row.ClientPhone,
			&row.CarID,
			&row.CarBrand,
			&row.CarModel,
			&row.CarYear,
			&row.RepairID,
			&row.RepairDescription,
			&row.RepairCost,
			&row.RepairQuantity,
		)
		if err != nil {
			return nil, err
		}
		detailRows = append(detailRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return buildInvoiceDetail(detailRows)
}
