package queries_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// catalogFixture is a small in-memory catalog: one service with one product
// costing 0.8 and priced 0.9, plus the standard statuses.
type catalogFixture struct {
	service  *catalog.Service
	product  *catalog.Product
	statuses map[string]*catalog.Status
}

func newCatalogFixture(t *testing.T) catalogFixture {
	t.Helper()

	service, err := catalog.NewService(kernel.NewUUID(), "Email")
	require.NoError(t, err)

	product, err := catalog.NewProduct(kernel.NewUUID(), service.ID(), "100GB Mailbox",
		decimal.RequireFromString("0.8"), decimal.RequireFromString("0.9"))
	require.NoError(t, err)

	statuses := make(map[string]*catalog.Status)
	for _, name := range catalog.StandardStatusNames() {
		s, statusErr := catalog.NewStatus(kernel.NewUUID(), name)
		require.NoError(t, statusErr)
		statuses[name] = s
	}

	return catalogFixture{service: service, product: product, statuses: statuses}
}

func (f catalogFixture) statusList() []*catalog.Status {
	list := make([]*catalog.Status, 0, len(f.statuses))
	for _, name := range catalog.StandardStatusNames() {
		list = append(list, f.statuses[name])
	}
	return list
}

func (f catalogFixture) order(t *testing.T, statusName string, createdAt time.Time, quantities ...int) *order.Order {
	t.Helper()

	orderID := kernel.NewUUID()
	items := make([]*order.Item, 0, len(quantities))
	for _, q := range quantities {
		item, err := order.NewItem(kernel.NewUUID(), orderID, f.product.ID(), f.service.ID(), q)
		require.NoError(t, err)
		items = append(items, item)
	}

	o, err := order.NewOrder(orderID, kernel.NewUUID(), kernel.NewUUID(), f.statuses[statusName].ID(), createdAt, items)
	require.NoError(t, err)
	return o
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
