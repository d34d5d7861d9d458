package domain

// Transaction is a finance entry, append-only within the planner core.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
}
