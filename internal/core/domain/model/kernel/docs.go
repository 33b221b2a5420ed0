// Package kernel holds the value objects shared by every aggregate of the order service.
//
// UUID is the only identity type in the domain: orders, items, statuses, products
// and services are all keyed by a 128-bit identifier that is stored as a fixed-width
// binary column and crosses the API boundary as canonical text.
package kernel
