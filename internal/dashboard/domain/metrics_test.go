package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeMetrics(t *testing.T) {
	t.Parallel()

	t.Run("derives profit and ROI from budgets and expenses", func(t *testing.T) {
		campaigns := []Campaign{{ID: "c1", Budget: 1000}}
		expenses := []Expense{{ID: "e1", Amount: 400}}

		m := ComputeMetrics(campaigns, expenses)
		require.Equal(t, 1000.0, m.TotalRevenue)
		require.Equal(t, 400.0, m.TotalExpenses)
		require.Equal(t, 600.0, m.TotalProfit)
		require.Equal(t, 60.0, m.TotalROI)
	})

	t.Run("ROI is zero when revenue is zero", func(t *testing.T) {
		m := ComputeMetrics([]Campaign{{Budget: 0}}, []Expense{{Amount: 400}})
		require.Equal(t, 0.0, m.TotalRevenue)
		require.Equal(t, -400.0, m.TotalProfit)
		require.Equal(t, 0.0, m.TotalROI)
	})

	t.Run("sums across multiple campaigns and expenses", func(t *testing.T) {
		campaigns := []Campaign{{Budget: 300}, {Budget: 700}}
		expenses := []Expense{{Amount: 100}, {Amount: 150}, {Amount: 250}}

		m := ComputeMetrics(campaigns, expenses)
		require.Equal(t, 1000.0, m.TotalRevenue)
		require.Equal(t, 500.0, m.TotalExpenses)
		require.Equal(t, 500.0, m.TotalProfit)
		require.Equal(t, 50.0, m.TotalROI)
	})

	t.Run("empty collections yield zero values", func(t *testing.T) {
		m := ComputeMetrics(nil, nil)
		require.Equal(t, Metrics{}, m)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		campaigns := []Campaign{{Budget: 123.45}, {Budget: 678.9}}
		expenses := []Expense{{Amount: 42.42}}
		require.Equal(t, ComputeMetrics(campaigns, expenses), ComputeMetrics(campaigns, expenses))
	})
}
