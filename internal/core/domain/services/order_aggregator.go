package services

import (
	"sort"
	"time"

	"orders/internal/core/domain/model/catalog"

	"github.com/shopspring/decimal"
)

// Line is one priced order line: the product's unit amounts and the ordered quantity.
type Line struct {
	UnitCost  decimal.Decimal
	UnitPrice decimal.Decimal
	Quantity  int
}

// OrderTotals are the sums over all lines of one order.
type OrderTotals struct {
	TotalCost  decimal.Decimal
	TotalPrice decimal.Decimal
	ItemCount  int
}

// ProfitLine is a priced line together with the status and creation time of the
// order it belongs to.
type ProfitLine struct {
	OrderCreatedAt  time.Time
	OrderStatusName string
	Line
}

// MonthlyProfit is the profit of completed orders created in one calendar month.
type MonthlyProfit struct {
	Year   int
	Month  int
	Profit decimal.Decimal
}

// OrderAggregator computes order and profit totals with exact decimal arithmetic.
//
// Example usage:
//
//	aggregator := services.NewOrderAggregator()
//	totals := aggregator.ComputeOrderTotals([]services.Line{
//	    {UnitCost: decimal.RequireFromString("0.8"), UnitPrice: decimal.RequireFromString("0.9"), Quantity: 2},
//	})
//	// totals.TotalCost == 1.6, totals.TotalPrice == 1.8, totals.ItemCount == 1
type OrderAggregator struct{}

func NewOrderAggregator() OrderAggregator {
	return OrderAggregator{}
}

// ComputeLineTotal returns unit cost and unit price multiplied by quantity.
func (OrderAggregator) ComputeLineTotal(unitCost, unitPrice decimal.Decimal, quantity int) (decimal.Decimal, decimal.Decimal) {
	q := decimal.NewFromInt(int64(quantity))
	return unitCost.Mul(q), unitPrice.Mul(q)
}

// ComputeOrderTotals sums the line totals. ItemCount is the number of lines,
// not the sum of quantities.
func (a OrderAggregator) ComputeOrderTotals(lines []Line) OrderTotals {
	totals := OrderTotals{
		TotalCost:  decimal.Zero,
		TotalPrice: decimal.Zero,
		ItemCount:  len(lines),
	}

	for _, line := range lines {
		cost, price := a.ComputeLineTotal(line.UnitCost, line.UnitPrice, line.Quantity)
		totals.TotalCost = totals.TotalCost.Add(cost)
		totals.TotalPrice = totals.TotalPrice.Add(price)
	}

	return totals
}

type yearMonth struct {
	year  int
	month int
}

// ComputeMonthlyProfits sums (unit price - unit cost) * quantity over lines of
// completed orders, grouped by the calendar month of the order's creation time in UTC.
// Groups come back in ascending (year, month) order. Months without completed
// lines are absent.
func (OrderAggregator) ComputeMonthlyProfits(lines []ProfitLine) []MonthlyProfit {
	profits := make(map[yearMonth]decimal.Decimal)

	for _, line := range lines {
		if line.OrderStatusName != catalog.StatusCompleted {
			continue
		}

		createdAt := line.OrderCreatedAt.UTC()
		key := yearMonth{year: createdAt.Year(), month: int(createdAt.Month())}

		unitProfit := line.UnitPrice.Sub(line.UnitCost)
		profit := unitProfit.Mul(decimal.NewFromInt(int64(line.Quantity)))

		sum, ok := profits[key]
		if !ok {
			sum = decimal.Zero
		}
		profits[key] = sum.Add(profit)
	}

	result := make([]MonthlyProfit, 0, len(profits))
	for key, profit := range profits {
		result = append(result, MonthlyProfit{Year: key.year, Month: key.month, Profit: profit})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Month < result[j].Month
	})

	return result
}

// SortNewestFirst orders items by the creation time returned by createdAt, newest
// first. Items with equal timestamps keep their relative order.
func SortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
