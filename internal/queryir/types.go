package queryir

// Query is a catalog query: Select or Join.
type Query interface {
	queryNode()
}

// Predicate is a filter condition: Equals, ColumnEquals or And.
type Predicate interface {
	predicateNode()
}

// Value is a literal compared by Equals: String, Int or Bool.
type Value interface {
	valueNode()
}

// Select reads rows from one relation.
//
//	SELECT <bindings> FROM <from> WHERE <filter> ORDER BY <order by>
//
// Bindings maps a column to the name it is returned under. Inside a Join,
// column names are qualified with From by the backend.
type Select struct {
	From     string
	Filter   Predicate         // nil = no filter
	Bindings map[string]string // column → result name
	OrderBy  []string          // required when the Select is the whole query
}

func (Select) queryNode() {}

// Join is an inner join of two Selects.
//
// The filters of both sides apply. OrderBy takes qualified columns
// ("tables.seq") and replaces the OrderBy of the sides.
type Join struct {
	Left    Query
	Right   Query
	On      Predicate
	OrderBy []string
}

func (Join) queryNode() {}

// Equals compares a column to a literal.
type Equals struct {
	Field string
	Value Value
}

func (Equals) predicateNode() {}

// ColumnEquals compares two columns, typically a join key. Both sides are
// qualified column names.
type ColumnEquals struct {
	Left  string
	Right string
}

func (ColumnEquals) predicateNode() {}

// And is a conjunction. An empty And is always true.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}

// String is a text literal.
type String string

// Int is an integer literal.
type Int int64

// Bool is a boolean literal, stored as 0 or 1.
type Bool bool

func (String) valueNode() {}
func (Int) valueNode()    {}
func (Bool) valueNode()   {}

// Schema lists the columns of each relation a query may reference.
type Schema map[string][]string
