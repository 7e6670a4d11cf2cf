// Package queryir is a small query representation for the unit catalog.
//
// Catalog reads are built as values instead of SQL strings:
//
//	Join{
//	    Left:    Select{From: "units", Filter: Equals{Field: "dimension", Value: String("Force")}, ...},
//	    Right:   Select{From: "tables", Bindings: map[string]string{"package": "package"}, ...},
//	    On:      ColumnEquals{Left: "units.table_hash", Right: "tables.hash"},
//	    OrderBy: []string{"tables.seq", "units.ord"},
//	}
//
// Validate checks a query against the catalog Schema before a backend
// (see querysql) compiles it. Relation and column names are checked
// because backends interpolate them; values are always parameters.
//
// Query, Predicate and Value are sealed: only this package implements
// them, so backends can switch over them exhaustively.
//
// Every query carries an explicit order. Results never depend on the
// storage engine's row order.
package queryir
