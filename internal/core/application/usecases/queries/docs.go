// Package queries contains read operations over orders and the catalog.
// Implements the Query side of the CQRS architecture: handlers never write, and
// every derived value (totals, profits) is recomputed on each call.
package queries
