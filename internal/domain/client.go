package domain

// Client - клиент гаража (таблица client)
// Обязательны только nom и prenom, остальные поля могут быть NULL
type Client struct {
	ID         int64   `json:"id_client"`
	LastName   string  `json:"nom"`
	FirstName  string  `json:"prenom"`
	Phone      *string `json:"telephone"`
	Email      *string `json:"mel"`
	Address    *string `json:"adresse"`
	PostalCode *string `json:"code_postal"`
	City       *string `json:"ville"`
}
