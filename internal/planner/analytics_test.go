package planner

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(date string, typ, category, amount string) Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return Transaction{
		Date:     d,
		Type:     typ,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
}

func TestAggregateTotalsAndCategories(t *testing.T) {
	a := Aggregate([]Transaction{
		tx("2025-01-10", "income", "Salary", "500"),
		tx("2025-01-12", "expense", "Food", "200"),
		tx("2025-01-20", "expense", "Food", "50"),
		tx("2025-01-25", "transfer", "Savings", "1000"),
	})

	assert.True(t, a.TotalIncome.Equal(decimal.RequireFromString("500")))
	assert.True(t, a.TotalExpenses.Equal(decimal.RequireFromString("250")))
	assert.True(t, a.Balance.Equal(decimal.RequireFromString("250")))

	require.Len(t, a.ExpensesByCategory, 1)
	assert.True(t, a.ExpensesByCategory["Food"].Equal(decimal.RequireFromString("250")))

	// transfers never show up anywhere
	_, ok := a.ExpensesByCategory["Savings"]
	assert.False(t, ok)
	_, ok = a.IncomeByCategory["Savings"]
	assert.False(t, ok)
}

func TestAggregateCategorySumsMatchTotals(t *testing.T) {
	txs := []Transaction{
		tx("2025-01-01", "income", "Salary", "1000.10"),
		tx("2025-02-01", "income", "Freelance", "250.25"),
		tx("2025-02-15", "income", "Salary", "1000.10"),
		tx("2025-01-05", "expense", "Rent", "800.33"),
		tx("2025-02-05", "expense", "Rent", "800.33"),
		tx("2025-02-07", "expense", "Food", "120.01"),
		tx("2025-03-01", "transfer", "Savings", "500"),
	}
	a := Aggregate(txs)

	incomeSum := decimal.Zero
	for _, v := range a.IncomeByCategory {
		incomeSum = incomeSum.Add(v)
	}
	assert.True(t, incomeSum.Equal(a.TotalIncome), "sum(incomeByCategory) = %s, totalIncome = %s", incomeSum, a.TotalIncome)

	expenseSum := decimal.Zero
	for _, v := range a.ExpensesByCategory {
		expenseSum = expenseSum.Add(v)
	}
	assert.True(t, expenseSum.Equal(a.TotalExpenses))

	assert.True(t, a.Balance.Equal(a.TotalIncome.Sub(a.TotalExpenses)))
}

func TestAggregateMonthlyTrend(t *testing.T) {
	a := Aggregate([]Transaction{
		tx("2025-02-10", "income", "Salary", "300"),
		tx("2025-01-10", "income", "Salary", "100"),
		tx("2025-01-31", "expense", "Food", "40"),
		tx("2025-03-01", "transfer", "Savings", "999"),
	})

	// transfers do not open month buckets
	require.Len(t, a.MonthlyTrend, 2)
	assert.Equal(t, "2025-01", a.MonthlyTrend[0].Month)
	assert.Equal(t, "2025-02", a.MonthlyTrend[1].Month)

	assert.True(t, a.MonthlyTrend[0].Income.Equal(decimal.RequireFromString("100")))
	assert.True(t, a.MonthlyTrend[0].Expenses.Equal(decimal.RequireFromString("40")))
	assert.True(t, a.MonthlyTrend[1].Income.Equal(decimal.RequireFromString("300")))

	trendIncome := decimal.Zero
	for _, p := range a.MonthlyTrend {
		trendIncome = trendIncome.Add(p.Income)
	}
	assert.True(t, trendIncome.Equal(a.TotalIncome))
}

func TestAggregateEmpty(t *testing.T) {
	a := Aggregate(nil)

	assert.True(t, a.TotalIncome.IsZero())
	assert.True(t, a.TotalExpenses.IsZero())
	assert.True(t, a.Balance.IsZero())
	assert.Empty(t, a.IncomeByCategory)
	assert.Empty(t, a.ExpensesByCategory)
	assert.Empty(t, a.MonthlyTrend)
}

func TestAggregateCentExact(t *testing.T) {
	// 0.1 + 0.2 style sums stay exact with decimal accumulators
	txs := make([]Transaction, 0, 10)
	for i := 0; i < 10; i++ {
		txs = append(txs, tx("2025-01-01", "expense", "Food", "0.10"))
	}
	a := Aggregate(txs)

	assert.Equal(t, "1", a.TotalExpenses.String())
	assert.True(t, a.ExpensesByCategory["Food"].Equal(a.TotalExpenses))
}
