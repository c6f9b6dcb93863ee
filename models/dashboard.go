package models

// PondDashboard is the read-side rollup for a single pond.
type PondDashboard struct {
	Pond          *Pond                `json:"pond"`
	TotalExpenses float64              `json:"totalExpenses"`
	FeedUsage     []UsageSummaryRow    `json:"feedUsage"`
	LatestReading *WaterQualityReading `json:"latestReading,omitempty"`
}

// SeasonSummary is the read-side rollup for a whole season.
type SeasonSummary struct {
	Season            *Season           `json:"season"`
	PondCount         int               `json:"pondCount"`
	TotalExpenses     float64           `json:"totalExpenses"`
	ExpenseByCategory []CategoryTotal   `json:"expenseByCategory"`
	UsageSummary      []UsageSummaryRow `json:"usageSummary"`
}
