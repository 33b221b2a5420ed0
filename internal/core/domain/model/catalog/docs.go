// Package catalog models the reference data orders are validated and priced against:
// order statuses, products and the services that group them.
//
// Catalog entries are owned outside the order service and are read-only here. They are
// restored from storage with the NewXxx constructors, which reject malformed rows.
//
// Status names are the only catalog values with behavior attached: StatusCompleted is the
// status whose orders contribute to monthly profit.
package catalog
