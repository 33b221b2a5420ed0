package catalog

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a sellable catalog entry with a fixed-point unit cost and unit price.
//
// Amounts are decimal.Decimal so that line and order totals are exact; they are
// never converted to floating point inside the service.
type Product struct {
	id        kernel.UUID
	serviceID kernel.UUID
	name      string
	unitCost  decimal.Decimal
	unitPrice decimal.Decimal

	isConstructed bool
}

// NewProduct builds a product. Unit cost and unit price must not be negative.
//
// Example:
//
//	p, err := catalog.NewProduct(productID, emailServiceID, "100GB Mailbox",
//	    decimal.RequireFromString("0.8"), decimal.RequireFromString("0.9"))
func NewProduct(
	id kernel.UUID,
	serviceID kernel.UUID,
	name string,
	unitCost decimal.Decimal,
	unitPrice decimal.Decimal,
) (*Product, error) {
	if err := errors.Join(
		id.Validate(),
		serviceID.Validate(),
		validateName("product name", name),
		validateAmount("unit cost", unitCost),
		validateAmount("unit price", unitPrice),
	); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		serviceID:     serviceID,
		name:          name,
		unitCost:      unitCost,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) ServiceID() kernel.UUID {
	return p.serviceID
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) UnitCost() decimal.Decimal {
	return p.unitCost
}

func (p *Product) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

// UnitProfit is unit price minus unit cost; it may be negative for loss leaders.
func (p *Product) UnitProfit() decimal.Decimal {
	return p.unitPrice.Sub(p.unitCost)
}

func validateAmount(param string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is negative", amount))
	}
	return nil
}
