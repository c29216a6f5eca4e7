package models

// YearlyDashboard aggregates the ledger for one reference year. Monthly
// buckets are 0-indexed by calendar month (January = 0) and derived in UTC.
// Growth percentages compare the reference year to the one before it and are
// zero when the previous year had no volume.
type YearlyDashboard struct {
	Year           int         `json:"year"`
	MonthlyIncome  [12]float64 `json:"monthly_income"`
	MonthlyExpense [12]float64 `json:"monthly_expense"`
	TotalIncome    float64     `json:"total_income"`
	TotalExpense   float64     `json:"total_expense"`
	IncomeGrowth   float64     `json:"income_growth"`
	ExpenseGrowth  float64     `json:"expense_growth"`
}
