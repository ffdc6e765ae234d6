package domain

// Metrics holds the aggregate dashboard figures. They are derived values:
// computed from the current collections, never independently persisted.
type Metrics struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalExpenses float64 `json:"totalExpenses"`
	TotalProfit   float64 `json:"totalProfit"`
	TotalROI      float64 `json:"totalROI"`
}

// ComputeMetrics derives the dashboard aggregates from the role-filtered
// campaign collection and the full expense collection. ROI is defined as 0
// when revenue is 0.
func ComputeMetrics(campaigns []Campaign, expenses []Expense) Metrics {
	var m Metrics
	for _, c := range campaigns {
		m.TotalRevenue += c.Budget
	}
	for _, e := range expenses {
		m.TotalExpenses += e.Amount
	}
	m.TotalProfit = m.TotalRevenue - m.TotalExpenses
	if m.TotalRevenue != 0 {
		m.TotalROI = m.TotalProfit / m.TotalRevenue * 100
	}
	return m
}
