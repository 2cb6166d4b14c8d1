// Package property evaluates buy-to-let property investments for a limited
// company.
//
// Given rent and cost assumptions it computes mortgage amortization
// schedules, UK corporation tax with marginal relief, and the full annual
// cash-flow picture for a candidate purchase price. On top of that model it
// runs nested bisection searches for the "fair price": the maximum price
// that still achieves a target net yield or cash-on-cash return, subject to
// rent covering the mortgage and an optional monthly cash-flow cap.
//
// Every function in this package is a pure mapping from explicit inputs to
// outputs: no shared state, no I/O, and bounded iteration. It is safe to
// call from any number of goroutines.
package property
