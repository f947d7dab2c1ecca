package report

type CreateExpenseDTO struct {
	OwnerID    int64   `json:"owner_id" binding:"required"`
	Label      string  `json:"label" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	IncurredAt string  `json:"incurred_at"`
}

// NetRevenueReport renders amounts with two decimals, the way they appear
// on an invoice. Arithmetic is done on the raw floats before formatting.
type NetRevenueReport struct {
	OwnerID  int64  `json:"owner_id"`
	Gross    string `json:"gross_revenue"`
	Expenses string `json:"total_expenses"`
	Net      string `json:"net_revenue"`
}
