package queries

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrderSummariesQueryIsNotConstructed = errors.New(
	"GetOrderSummariesQuery must be created via NewGetOrderSummariesQuery constructor",
)

// GetOrderSummariesQuery lists order summaries, optionally restricted to one status name.
//
// Example:
//
//	all := NewGetOrderSummariesQuery()
//	completed, err := NewGetOrderSummariesByStatusNameQuery("Completed")
type GetOrderSummariesQuery struct {
	statusName string

	guard guard.ConstructorGuard
}

func NewGetOrderSummariesQuery() GetOrderSummariesQuery {
	return GetOrderSummariesQuery{guard: guard.NewConstructorGuard()}
}

func NewGetOrderSummariesByStatusNameQuery(statusName string) (GetOrderSummariesQuery, error) {
	if strings.TrimSpace(statusName) == "" {
		return GetOrderSummariesQuery{}, errs.NewValueIsRequiredError("status name")
	}

	return GetOrderSummariesQuery{statusName: statusName, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderSummariesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummariesQueryIsNotConstructed)
}

// StatusName is empty when the query is not filtered.
func (q GetOrderSummariesQuery) StatusName() string {
	return q.statusName
}
