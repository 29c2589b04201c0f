package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/sebdah/goldie/v2"
)

// GoldenDir is the golden report directory, a sibling of the scenario
// directory.
const GoldenDir = "golden"

// Report renders a result as indented JSON. Field order follows the
// struct declarations, so the output is deterministic. HTML escaping is off
// so debug forms such as Identifier<phantom.Foo>(1) stay readable.
func Report(result *Result) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompareGolden reports whether result matches dir/{name}.golden. A missing
// golden file is an error wrapping fs.ErrNotExist.
func CompareGolden(dir, name string, result *Result) (bool, error) {
	report, err := Report(result)
	if err != nil {
		return false, err
	}
	want, err := os.ReadFile(filepath.Join(dir, name+".golden"))
	if err != nil {
		return false, fmt.Errorf("read golden report: %w", err)
	}
	return bytes.Equal(report, want), nil
}

// WriteGolden writes result's report to dir/{name}.golden, creating dir
// if needed.
func WriteGolden(dir, name string, result *Result) error {
	report, err := Report(result)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create golden dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".golden"), report, 0o644); err != nil {
		return fmt.Errorf("write golden report: %w", err)
	}
	return nil
}

// RunWithGolden runs a scenario and compares its report against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, h *Harness, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := h.Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	report, err := Report(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, report)
	return nil
}
