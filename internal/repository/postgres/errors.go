package postgres

import (
	"errors"

	"github.com/frontandrew/garage/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок PostgreSQL, которые переводятся в доменные ошибки
const (
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgInvalidDatetime     = "22007"
	pgDatetimeOverflow    = "22008"
)

// translateError переводит ошибки записи в доменные ошибки;
// остальные ошибки возвращаются без изменений
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgForeignKeyViolation:
		return domain.ErrUnknownReference
	case pgNotNullViolation:
		if pgErr.TableName == "client" {
			return domain.ErrInvalidClientData
		}
		return domain.ErrInvalidInvoiceData
	case pgInvalidDatetime, pgDatetimeOverflow:
		return domain.ErrInvalidInvoiceData
	default:
		return err
	}
}
