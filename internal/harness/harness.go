package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/idlink/internal/typecheck"
)

// Harness runs scenarios. Static checks go through the checker; runtime
// checks use the variant's kind table.
type Harness struct {
	checker *typecheck.Checker
	logger  *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New creates a harness. checker may be nil when no scenario has static
// checks.
func New(checker *typecheck.Checker, opts ...Option) *Harness {
	h := &Harness{
		checker: checker,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes every check of a scenario and returns the result.
//
// A failed check is recorded in the Result and the run continues. The
// error return is reserved for scenarios that cannot be executed: an
// unknown variant or kind, or static source that does not parse.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	table := variants[scenario.Variant]

	result := NewResult(scenario)
	for i := range scenario.Checks {
		c := &scenario.Checks[i]

		var out Outcome
		switch c.Type {
		case CheckStatic:
			var err error
			out, err = h.runStatic(scenario.Name, i, c)
			if err != nil {
				return nil, fmt.Errorf("failed to run scenario %s: %w", scenario.Name, err)
			}
		case CheckLookup:
			out = runLookup(i, c, table[c.Kind])
		case CheckEquality:
			other := c.Kind
			if c.OtherKind != "" {
				other = c.OtherKind
			}
			out = runEquality(i, c, table[c.Kind], table[other])
		case CheckFormat:
			out = runFormat(i, c, table[c.Kind])
		case CheckAccessor:
			out = runAccessor(i, c, table[c.Kind])
		}

		result.Record(out)
		if !out.Pass {
			result.AddError(fmt.Sprintf("checks[%d] (%s): %s", i, c.Type, out.Detail))
		}
	}

	h.logger.Info("scenario finished",
		"scenario", scenario.Name,
		"variant", scenario.Variant,
		"pass", result.Pass,
	)
	return result, nil
}
