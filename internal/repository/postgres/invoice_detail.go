package postgres

import "github.com/frontandrew/garage/internal/domain"

// invoiceDetailRow - одна плоская строка запроса деталей счета
type invoiceDetailRow struct {
	InvoiceID int64
	Date      string
	Amount    *float64

	ClientID       int64
	ClientLastName string
	ClientEmail    *string
	ClientPhone    *string

	CarID    int64
	CarBrand *string
	CarModel *string
	CarYear  *int32

	// NULL, если к счету не привязан ни один ремонт
	RepairID          *int64
	RepairDescription *string
	RepairCost        *float64
	RepairQuantity    *int32
}

// buildInvoiceDetail собирает вложенный объект из плоских строк.
// Поля счета, клиента и автомобиля берутся из первой строки,
// ремонты - из каждой строки с непустым id, в порядке строк.
func buildInvoiceDetail(rows []invoiceDetailRow) (*domain.InvoiceDetail, error) {
	if len(rows) == 0 {
		return nil, domain.ErrInvoiceNotFound
	}

	first := rows[0]
	detail := &domain.InvoiceDetail{
		ID:     first.InvoiceID,
		Date:   first.Date,
		Amount: first.Amount,
		Client: domain.InvoiceClient{
			ID:       first.ClientID,
			LastName: first.ClientLastName,
			Email:    first.ClientEmail,
			Phone:    first.ClientPhone,
		},
		Car: domain.InvoiceCar{
			ID:    first.CarID,
			Brand: first.CarBrand,
			Model: first.CarModel,
			Year:  first.CarYear,
		},
		Repairs: make([]domain.InvoiceRepair, 0, len(rows)),
	}

	for _, row := range rows {
		if row.RepairID == nil || *row.RepairID == 0 {
			continue
		}
		detail.Repairs = append(detail.Repairs, domain.InvoiceRepair{
			ID:          *row.RepairID,
			Description: row.RepairDescription,
			Cost:        row.RepairCost,
			Quantity:    row.RepairQuantity,
		})
	}

	return detail, nil
}
