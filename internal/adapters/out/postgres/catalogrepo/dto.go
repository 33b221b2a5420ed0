// Package catalogrepo provides read access to order statuses, products and services
// stored in PostgreSQL.
package catalogrepo

import (
	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StatusDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(50);not null;uniqueIndex"`
}

func (StatusDTO) TableName() string {
	return "order_statuses"
}

type ServiceDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

func (ServiceDTO) TableName() string {
	return "order_services"
}

// ProductDTO stores unit amounts as numeric(18,4) so they round-trip exactly.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ServiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitCost  decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(18,4);not null"`
}

func (ProductDTO) TableName() string {
	return "order_products"
}

func statusToDomain(dto StatusDTO) (*catalog.Status, error) {
	return catalog.NewStatus(kernel.UUIDFromGoogle(dto.ID), dto.Name)
}

func serviceToDomain(dto ServiceDTO) (*catalog.Service, error) {
	return catalog.NewService(kernel.UUIDFromGoogle(dto.ID), dto.Name)
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	return catalog.NewProduct(
		kernel.UUIDFromGoogle(dto.ID),
		kernel.UUIDFromGoogle(dto.ServiceID),
		dto.Name,
		dto.UnitCost,
		dto.UnitPrice,
	)
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}
