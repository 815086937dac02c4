package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения

// Client errors
var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientData = errors.New("invalid client data")
)

// Invoice errors
var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrNoInvoicesForClient = errors.New("no invoices found for client")
	ErrInvalidInvoiceData  = errors.New("invalid invoice data")
	ErrUnknownReference    = errors.New("referenced client or car does not exist")
)
