// Package hourbook keeps per-client hourly-billing ledgers: for each
// client an ordered list of entries carrying the amount billed per hour,
// the amount deposited, and a derived pending balance.
//
// The core functionalities include:
//   - Bookkeeping: registering clients (unique per owner and mobile
//     number), adding, editing and deleting ledger entries while keeping
//     serial numbers contiguous and totals consistent.
//   - Reporting: turning a ledger into a paginated fixed-width table of
//     positioned cells (see the report subpackage) that a PDF or terminal
//     backend renders verbatim.
//   - Data Persistence: encoding and decoding books to and from a
//     human-readable, version-controllable JSONL file.
//
// This package serves as the foundational logic for the `hb` command-line
// tool; all mutations go through a Book instance, never through shared
// process-wide state.
package hourbook
