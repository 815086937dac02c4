package http

import "net/http"

// apiDocs - статическое описание API, отдаваемое на GET /
type apiDocs struct {
	Title     string                       `json:"title"`
	Version   string                       `json:"version"`
	Endpoints map[string]map[string]string `json:"endpoints"`
	Examples  map[string]apiExample        `json:"exemples"`
}

type apiExample struct {
	Method string                 `json:"méthode"`
	Body   map[string]interface{} `json:"body"`
}

var docs = apiDocs{
	Title:   "API Documentation",
	Version: "1.0.0",
	Endpoints: map[string]map[string]string{
		"clients": {
			"GET /clients":      "Récupérer tous les clients",
			"GET /clients/{id}": "Récupérer un client spécifique",
			"POST /clients":     "Créer un nouveau client",
		},
		"factures": {
			"GET /factures?client_id={id}": "Récupérer les factures d'un client",
			"GET /factures/{id}":           "Récupérer les détails d'une facture",
			"POST /factures":               "Créer une nouvelle facture",
		},
		"service": {
			"GET /health": "Vérifier l'état du service",
		},
	},
	Examples: map[string]apiExample{
		"création client": {
			Method: "POST /clients",
			Body: map[string]interface{}{
				"nom":         "Dupont",
				"prenom":      "Jean",
				"telephone":   "0123456789",
				"mel":         "jean.dupont@email.com",
				"adresse":     "123 rue Example",
				"code_postal": "75000",
				"ville":       "Paris",
			},
		},
		"création facture": {
			Method: "POST /factures",
			Body: map[string]interface{}{
				"id_client":  1,
				"id_voiture": 1,
				"date":       "2024-02-22",
			},
		},
	},
}

// GetDocs возвращает описание доступных endpoints
// GET /
func GetDocs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, docs)
}
