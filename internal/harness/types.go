package harness

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every expectation held.
	Pass bool `json:"pass"`

	// Document is the serialized RelAlg document, as read back from the store.
	// Empty when serialization failed.
	Document string `json:"document,omitempty"`

	// Hash is the content address of Document.
	Hash string `json:"hash,omitempty"`

	// Nodes is the number of emitted nodes.
	Nodes int `json:"nodes"`

	// Order lists node labels in emission order.
	Order []string `json:"order"`

	// Failure is the plan error, if loading, building or serializing failed.
	Failure string `json:"failure,omitempty"`

	// Errors contains expectation failures.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Order:  []string{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
