package dto

// DashboardResponse aggregates a month of activity for the authenticated user
type DashboardResponse struct {
	Month        string                `json:"month"`
	TotalIncome  string                `json:"totalIncome"`
	TotalExpense string                `json:"totalExpense"`
	Balance      string                `json:"balance"`
	ChartLabels  []string              `json:"chartLabels"`
	ChartValues  []string              `json:"chartValues"`
	Transactions []TransactionResponse `json:"transactions"`
}
