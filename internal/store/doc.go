// Package store provides a SQLite-backed catalog of compiled unit tables
// and the generation runs that rendered them.
//
// The catalog holds:
//   - Tables: canonical JSON of each distinct table, keyed by content hash
//   - Units: one row per catalogued unit with its seven exponents
//   - Runs: one row per unitgen generate invocation
//
// # Ordering
//
// Tables and runs carry a seq INTEGER assigned by the store (a logical
// clock), never a timestamp. Every query orders by seq then by a binary
// collated key, so listings are identical across machines.
//
// # Identity
//
// A table is identified by ir.TableHash. Saving the same table twice is a
// no-op; tables that differ only in their source path hash equal.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait up to 5s for locks
//   - foreign_keys=ON: Units and runs must reference a saved table
package store
