// Package order provides the Order aggregate of the reseller order service.
//
// The package includes:
//   - Order: the aggregate root holding reseller, customer, status and creation time
//   - Item: a product/service line with a quantity, owned by exactly one order
//
// Key business rules:
//   - Orders and items are identified by kernel.UUID values
//   - An order's status is a reference to a catalog status id; any status may
//     replace any other, there is no transition graph
//   - Items are immutable once the order is created
//
// Referential checks (status, product and service existence, item count, positive
// quantities) happen before an order is constructed and are not repeated here.
package order
