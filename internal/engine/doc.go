// Package engine computes distributor orders and store dispatches from a
// snapshot of catalog, price tier, scheme and stock data.
//
// Every function here is a pure computation over its arguments: nothing is
// fetched, persisted or logged, and inputs are never mutated, so a single
// snapshot can be shared by concurrent callers. Stock feasibility is a
// preview only. It is not a reservation, and the write path must re-check
// stock when the order is committed.
package engine
