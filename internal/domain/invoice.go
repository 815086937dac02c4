package domain

// DefaultInvoiceAmount - сумма, с которой создается каждый счет.
// Расчет суммы по ремонтам пока не реализован, клиентское значение игнорируется.
const DefaultInvoiceAmount = 0.0

// Invoice - счет (таблица facture), привязанный к клиенту и автомобилю
type Invoice struct {
	ID       int64    `json:"id_facture"`
	ClientID int64    `json:"client_id"`
	CarID    int64    `json:"voiture_id"`
	Amount   *float64 `json:"montant"`
	Date     string   `json:"date"`
}

// InvoiceDetail - счет вместе с клиентом, автомобилем и ремонтами
type InvoiceDetail struct {
	ID      int64           `json:"facture_id"`
	Date    string          `json:"date_facture"`
	Amount  *float64        `json:"montant"`
	Client  InvoiceClient   `json:"client"`
	Car     InvoiceCar      `json:"voiture"`
	Repairs []InvoiceRepair `json:"reparations"`
}

// InvoiceClient - часть полей клиента, возвращаемая в деталях счета
type InvoiceClient struct {
	ID       int64   `json:"id_client"`
	LastName string  `json:"nom"`
	Email    *string `json:"email"`
	Phone    *string `json:"telephone"`
}

// InvoiceCar - часть полей автомобиля (таблица voiture)
type InvoiceCar struct {
	ID    int64   `json:"id"`
	Brand *string `json:"marque"`
	Model *string `json:"modele"`
	Year  *int32  `json:"annee"`
}

// InvoiceRepair - тип ремонта (type_reparation) с количеством из facture_type_reparation
type InvoiceRepair struct {
	ID          int64    `json:"id"`
	Description *string  `json:"description"`
	Cost        *float64 `json:"cout"`
	Quantity    *int32   `json:"quantite"`
}
