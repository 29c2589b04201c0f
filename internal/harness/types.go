package harness

// Outcome is the recorded result of one check.
type Outcome struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	Kind  string `json:"kind,omitempty"`
	Pass  bool   `json:"pass"`

	// Detail summarizes what was observed. It never contains compiler
	// message text, so reports stay stable across Go releases.
	Detail string `json:"detail"`
}

// Result is the outcome of a scenario run.
type Result struct {
	Scenario string `json:"scenario"`
	Variant  string `json:"variant"`

	// Pass is true when every check passed.
	Pass bool `json:"pass"`

	Checks []Outcome `json:"checks"`

	// Errors holds one message per failed check. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(s *Scenario) *Result {
	return &Result{
		Scenario: s.Name,
		Variant:  s.Variant,
		Pass:     true,
		Checks:   []Outcome{},
		Errors:   []string{},
	}
}

// AddError adds an error message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Record appends an outcome.
func (r *Result) Record(o Outcome) {
	r.Checks = append(r.Checks, o)
}
