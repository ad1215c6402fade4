package planner

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Analytics summarizes transactions in a date range. Transfers move money
// between the user's own accounts and are excluded from every figure here.
type Analytics struct {
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	Balance            decimal.Decimal            `json:"balance"`
	IncomeByCategory   map[string]decimal.Decimal `json:"incomeByCategory"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
	MonthlyTrend       []MonthPoint               `json:"monthlyTrend"`
}

type MonthPoint struct {
	Month    string          `json:"month"` // YYYY-MM
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// GetAnalytics fetches transactions dated within [start, end] inclusive and
// aggregates them. An empty range yields zero totals, not an error.
func (s *Service) GetAnalytics(ctx context.Context, start, end time.Time) (*Analytics, error) {
	var rows []Transaction
	err := s.DB.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return Aggregate(rows), nil
}

// Aggregate folds transactions into totals, category breakdowns, and a
// monthly income/expense trend. Decimal accumulators keep the category sums
// equal to the totals at the cent level. Transfers are skipped everywhere.
func Aggregate(txs []Transaction) *Analytics {
	a := &Analytics{
		TotalIncome:        decimal.Zero,
		TotalExpenses:      decimal.Zero,
		IncomeByCategory:   map[string]decimal.Decimal{},
		ExpensesByCategory: map[string]decimal.Decimal{},
		MonthlyTrend:       []MonthPoint{},
	}

	months := map[string]*MonthPoint{}

	for _, tx := range txs {
		month := tx.Date.Format("2006-01")

		switch tx.Type {
		case "income":
			a.TotalIncome = a.TotalIncome.Add(tx.Amount)
			a.IncomeByCategory[tx.Category] = a.IncomeByCategory[tx.Category].Add(tx.Amount)
			monthPoint(months, month).Income = monthPoint(months, month).Income.Add(tx.Amount)
		case "expense":
			a.TotalExpenses = a.TotalExpenses.Add(tx.Amount)
			a.ExpensesByCategory[tx.Category] = a.ExpensesByCategory[tx.Category].Add(tx.Amount)
			monthPoint(months, month).Expenses = monthPoint(months, month).Expenses.Add(tx.Amount)
		}
		// transfers fall through untouched
	}

	a.Balance = a.TotalIncome.Sub(a.TotalExpenses)

	for _, p := range months {
		a.MonthlyTrend = append(a.MonthlyTrend, *p)
	}
	sort.Slice(a.MonthlyTrend, func(i, j int) bool {
		return a.MonthlyTrend[i].Month < a.MonthlyTrend[j].Month
	})

	return a
}

func monthPoint(months map[string]*MonthPoint, month string) *MonthPoint {
	p, ok := months[month]
	if !ok {
		p = &MonthPoint{Month: month, Income: decimal.Zero, Expenses: decimal.Zero}
		months[month] = p
	}
	return p
}
