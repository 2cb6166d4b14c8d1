// Package networth provides the functions and types for tracking and
// projecting a personal net worth. It is designed to be local-first,
// auditable, and extensible: all data lives in human-readable JSONL files
// that can be versioned, and every query is a pure function of the ledger
// and a date.
//
// The core functionalities include:
//   - Ledger Management: dated value records for any number of accounts,
//     grouped into user-defined categories, in an always-sorted record.
//   - Net-Worth Reporting: totals, per-category and per-account
//     distributions, and the full history of net worth over time, in a
//     single reporting currency.
//   - Growth Simulation: closed-form compounding projections over a set of
//     independent savings pots.
//   - Data Persistence: encoding and decoding the ledger to and from a
//     human-readable, version-controllable JSONL format.
//
// The buy-to-let fair-price solver lives in the property subpackage; this
// package serves as the foundational logic for the `nwt` command-line tool.
package networth
