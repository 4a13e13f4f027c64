package models

import (
	"github.com/shopspring/decimal"
)

// DashboardSummary is the read-time reduction over a user's accounts,
// transactions, goals, and insights. It is recomputed on every request;
// nothing here is persisted.
type DashboardSummary struct {
	TotalAssets        decimal.Decimal `json:"total_assets"`
	TotalInvestments   decimal.Decimal `json:"total_investments"`
	TotalRetirement    decimal.Decimal `json:"total_retirement"`
	MonthlySpending    decimal.Decimal `json:"monthly_spending"`
	AccountsCount      int             `json:"accounts_count"`
	RecentTransactions []Transaction   `json:"recent_transactions"`
	ActiveGoals        []Goal          `json:"active_goals"`
	UnreadInsights     []Insight       `json:"unread_insights"`
}
