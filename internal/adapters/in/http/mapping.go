package http

import (
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/services"
)

func toOrderSummaries(summaries []queries.OrderSummary) []OrderSummary {
	response := make([]OrderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = toOrderSummary(summary)
	}
	return response
}

func toOrderSummary(summary queries.OrderSummary) OrderSummary {
	return OrderSummary{
		Id:          summary.ID.Bytes(),
		ResellerId:  summary.ResellerID.Bytes(),
		CustomerId:  summary.CustomerID.Bytes(),
		StatusId:    summary.StatusID.Bytes(),
		StatusName:  summary.StatusName,
		ItemCount:   summary.ItemCount,
		TotalCost:   summary.TotalCost,
		TotalPrice:  summary.TotalPrice,
		CreatedDate: summary.CreatedAt,
	}
}

func toOrderDetail(detail *queries.OrderDetail) OrderDetail {
	items := make([]OrderItem, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = OrderItem{
			Id:          item.ID.Bytes(),
			OrderId:     item.OrderID.Bytes(),
			ProductId:   item.ProductID.Bytes(),
			ProductName: item.ProductName,
			ServiceId:   item.ServiceID.Bytes(),
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			UnitCost:    item.UnitCost,
			UnitPrice:   item.UnitPrice,
			TotalCost:   item.TotalCost,
			TotalPrice:  item.TotalPrice,
		}
	}

	return OrderDetail{
		OrderSummary: toOrderSummary(detail.OrderSummary),
		Items:        items,
	}
}

func toMonthlyProfits(profits []services.MonthlyProfit) []MonthlyProfit {
	response := make([]MonthlyProfit, len(profits))
	for i, profit := range profits {
		response[i] = MonthlyProfit{
			Year:   profit.Year,
			Month:  profit.Month,
			Profit: profit.Profit,
		}
	}
	return response
}
