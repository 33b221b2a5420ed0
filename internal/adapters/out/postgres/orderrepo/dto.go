// Package orderrepo provides the GORM repository for order aggregates and the
// mapping between orders and their table rows.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table. Items are stored in order_items.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ResellerID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	CustomerID  uuid.UUID      `gorm:"type:uuid;not null"`
	StatusID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedDate time.Time      `gorm:"type:timestamptz;not null;index"`
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a row of the order_items table. Quantity is nullable for rows
// written by older clients; Position keeps the insertion order of an order's lines.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  *int      `gorm:"type:int"`
	Position  int       `gorm:"type:int;not null;default:0"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, aggregate.ItemCount())

	for idx, item := range aggregate.Items() {
		quantity := item.Quantity()
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			ServiceID: item.ServiceID().Bytes(),
			Quantity:  &quantity,
			Position:  idx,
		})
	}

	return OrderDTO{
		ID:          orderID,
		ResellerID:  aggregate.ResellerID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		StatusID:    aggregate.StatusID().Bytes(),
		CreatedDate: aggregate.CreatedAt().UTC(),
		Items:       items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		kernel.UUIDFromGoogle(dto.ID),
		kernel.UUIDFromGoogle(dto.ResellerID),
		kernel.UUIDFromGoogle(dto.CustomerID),
		kernel.UUIDFromGoogle(dto.StatusID),
		dto.CreatedDate.UTC(),
		items,
	)
}

// itemToDomain restores a line; a NULL quantity becomes 0.
func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	quantity := 0
	if dto.Quantity != nil {
		quantity = *dto.Quantity
	}

	return order.NewItem(
		kernel.UUIDFromGoogle(dto.ID),
		kernel.UUIDFromGoogle(dto.OrderID),
		kernel.UUIDFromGoogle(dto.ProductID),
		kernel.UUIDFromGoogle(dto.ServiceID),
		quantity,
	)
}
