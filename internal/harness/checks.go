package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/idlink/internal/typecheck"
)

// runStatic type-checks c.Source. A source file that does not parse is a
// broken scenario, not a rejection, and is returned as an error.
func (h *Harness) runStatic(name string, index int, c *Check) (Outcome, error) {
	out := Outcome{Index: index, Type: c.Type}
	if h.checker == nil {
		return out, fmt.Errorf("checks[%d]: static check needs a checker", index)
	}

	filename := fmt.Sprintf("%s_%d.go", name, index)
	res, err := h.checker.CheckSource(filename, []byte(c.Source))
	if err != nil {
		return out, fmt.Errorf("checks[%d]: %w", index, err)
	}

	mismatches := res.Mismatches()
	h.logger.Debug("static check",
		"scenario", name,
		"file", filename,
		"mismatches", len(mismatches),
	)

	switch c.Expect {
	case ExpectAccept:
		out.Pass = res.Accepted()
		if out.Pass {
			out.Detail = "accepted"
		} else {
			out.Detail = fmt.Sprintf("rejected: %s", res.Diagnostics[0].Message)
		}
	case ExpectReject:
		out.Pass = len(mismatches) > 0 && containsMessage(mismatches, c.Contains)
		switch {
		case res.Accepted():
			out.Detail = "accepted"
		case out.Pass:
			out.Detail = "rejected with a type mismatch"
		case len(mismatches) == 0:
			out.Detail = fmt.Sprintf("rejected without a type mismatch: %s", res.Diagnostics[0].Message)
		default:
			out.Detail = fmt.Sprintf("no mismatch mentions %q", c.Contains)
		}
	}
	return out, nil
}

func containsMessage(ds []typecheck.Diagnostic, want string) bool {
	if want == "" {
		return true
	}
	for _, d := range ds {
		if strings.Contains(d.Message, want) {
			return true
		}
	}
	return false
}

func runLookup(index int, c *Check, k kind) Outcome {
	out := Outcome{Index: index, Type: c.Type, Kind: c.Kind, Pass: true}

	table := make(map[identity]int64, len(c.Insert))
	for _, raw := range c.Insert {
		table[k.id(raw)] = raw
	}

	var problems []string
	for _, raw := range c.Present {
		got, ok := table[k.id(raw)]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("%d missing", raw))
		case got != raw:
			problems = append(problems, fmt.Sprintf("%d maps to %d", raw, got))
		}
	}
	for _, raw := range c.Absent {
		if _, ok := table[k.id(raw)]; ok {
			problems = append(problems, fmt.Sprintf("%d unexpectedly present", raw))
		}
	}

	if len(problems) > 0 {
		out.Pass = false
		out.Detail = strings.Join(problems, "; ")
		return out
	}
	out.Detail = fmt.Sprintf("%d stored, %d present, %d absent", len(table), len(c.Present), len(c.Absent))
	return out
}

func runEquality(index int, c *Check, left, right kind) Outcome {
	out := Outcome{Index: index, Type: c.Type, Kind: c.Kind}

	a, b := left.id(c.Left), right.id(c.Right)
	got := a == b
	out.Detail = fmt.Sprintf("%#v == %#v: %t", a, b, got)

	dup := a
	switch {
	case dup != a:
		out.Detail = fmt.Sprintf("%#v is not equal to its copy", a)
	case got != c.Equal:
		out.Detail = fmt.Sprintf("%#v == %#v: %t, want %t", a, b, got, c.Equal)
	case got && a.Hash() != b.Hash():
		out.Detail = fmt.Sprintf("%#v and %#v are equal with different hashes", a, b)
	default:
		out.Pass = true
	}
	return out
}

func runFormat(index int, c *Check, k kind) Outcome {
	out := Outcome{Index: index, Type: c.Type, Kind: c.Kind, Pass: true}

	id := k.id(c.Raw)
	s, gs := id.String(), id.GoString()

	var problems []string
	if c.String != "" && s != c.String {
		problems = append(problems, fmt.Sprintf("String() = %q, want %q", s, c.String))
	}
	if c.GoString != "" && gs != c.GoString {
		problems = append(problems, fmt.Sprintf("GoString() = %q, want %q", gs, c.GoString))
	}
	if len(problems) > 0 {
		out.Pass = false
		out.Detail = strings.Join(problems, "; ")
		return out
	}
	out.Detail = fmt.Sprintf("%s %s", s, gs)
	return out
}

func runAccessor(index int, c *Check, k kind) Outcome {
	out := Outcome{Index: index, Type: c.Type, Kind: c.Kind}

	want := k.id(c.Raw)
	first, second := k.viaEntity(c.Raw), k.viaEntity(c.Raw)
	out.Pass = first == want && second == first && first.Raw() == c.Raw
	if out.Pass {
		out.Detail = fmt.Sprintf("ID() = %#v", first)
	} else {
		out.Detail = fmt.Sprintf("ID() = %#v, want %#v", first, want)
	}
	return out
}
