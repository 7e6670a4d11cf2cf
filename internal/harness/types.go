package harness

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	Pass bool `json:"pass"`

	// Errors contains failed expectations. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Units maps each compiled unit to its rendering.
	Units map[string]string `json:"units,omitempty"`

	// Hash is the content hash of the compiled table.
	Hash string `json:"hash,omitempty"`

	// Source is the generated Go source; nil if the table failed.
	Source []byte `json:"-"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
		Units:  make(map[string]string),
	}
}

// AddError adds a failed expectation and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
