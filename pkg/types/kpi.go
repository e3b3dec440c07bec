package types

import "github.com/shopspring/decimal"

// KPIMetrics carries the server-computed performance numbers for one dealer.
// Money values are decimals; rate values are fractions in [0, 1].
type KPIMetrics struct {
	SalesVolume             decimal.Decimal `json:"sales_volume"`
	ConversionRate          float64         `json:"conversion_rate"`
	CustomerSatisfaction    float64         `json:"customer_satisfaction"`
	ChecklistCompletionRate float64         `json:"checklist_completion_rate"`
	LeadGeneration          int             `json:"lead_generation"`
	Revenue                 decimal.Decimal `json:"revenue"`
	Expenses                decimal.Decimal `json:"expenses"`
	Profit                  decimal.Decimal `json:"profit"`
}
