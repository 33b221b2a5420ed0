// Package services provides domain services that compute values spanning several
// domain objects of the order system.
//
// The package includes:
//   - OrderAggregator: line totals, order totals and monthly profit rollups
//
// Every function here is pure. Inputs are plain values copied out of aggregates and
// catalog entries, so results do not depend on storage or transport.
package services
