// Package clinicbook keeps the financial books of a small medical clinic:
// service receipts with commission splits, expenses, stock levels and per-day
// cash configuration, all mirrored to a single local JSON slot on every
// change.
//
// The package is the domain: the Book record store, the snapshot persistence
// with schema migrations, the pure daily/monthly aggregation functions and
// the commission calculator. The clb command in clb/ is the user surface.
package clinicbook
