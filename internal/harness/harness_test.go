package harness

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/idlink/internal/testutil"
)

func TestRun_RuntimeChecksWithoutChecker(t *testing.T) {
	scenario := &Scenario{
		Name:    "runtime",
		Variant: VariantPhantom,
		Checks: []Check{
			{Type: CheckLookup, Kind: "Foo", Insert: []int64{1, 2, 3}, Present: []int64{1, 2, 3}, Absent: []int64{4}},
			{Type: CheckEquality, Kind: "Foo", OtherKind: "Bar", Left: 1, Right: 1, Equal: false},
			{Type: CheckFormat, Kind: "Foo", Raw: 1, String: "1", GoString: "Identifier<phantom.Foo>(1)"},
			{Type: CheckAccessor, Kind: "Bar", Raw: 9},
		},
	}

	result, err := New(nil).Run(scenario)
	require.NoError(t, err)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Checks, 4)
	for i, o := range result.Checks {
		assert.Equal(t, i, o.Index)
		assert.True(t, o.Pass)
	}
}

func TestRun_FailedChecksAreRecorded(t *testing.T) {
	scenario := &Scenario{
		Name:    "failing",
		Variant: VariantBidirectional,
		Checks: []Check{
			{Type: CheckEquality, Kind: "Foo", OtherKind: "Bar", Left: 1, Right: 1, Equal: true},
			{Type: CheckLookup, Kind: "Foo", Insert: []int64{1}, Present: []int64{2}, Absent: []int64{1}},
			{Type: CheckFormat, Kind: "Bar", Raw: 1, GoString: "FooID(1)"},
			{Type: CheckAccessor, Kind: "Foo", Raw: 1},
		},
	}

	result, err := New(nil).Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Checks, 4, "every check runs after a failure")
	assert.False(t, result.Checks[0].Pass)
	assert.Equal(t, "FooID(1) == BarID(1): false, want true", result.Checks[0].Detail)
	assert.False(t, result.Checks[1].Pass)
	assert.Equal(t, "2 missing; 1 unexpectedly present", result.Checks[1].Detail)
	assert.False(t, result.Checks[2].Pass)
	assert.Contains(t, result.Checks[2].Detail, `want "FooID(1)"`)
	assert.True(t, result.Checks[3].Pass)
	assert.Len(t, result.Errors, 3)
}

func TestRun_UnidirectionalBazSharesFooIdentity(t *testing.T) {
	scenario := &Scenario{
		Name:    "baz",
		Variant: VariantUnidirectional,
		Checks: []Check{
			{Type: CheckEquality, Kind: "Foo", OtherKind: "Baz", Left: 5, Right: 5, Equal: true},
			{Type: CheckLookup, Kind: "Baz", Insert: []int64{5}, Present: []int64{5}},
		},
	}

	result, err := New(nil).Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, "FooID(5) == FooID(5): true", result.Checks[0].Detail)
}

func TestRun_StaticNeedsChecker(t *testing.T) {
	scenario := &Scenario{
		Name:    "static",
		Variant: VariantPhantom,
		Checks:  []Check{{Type: CheckStatic, Expect: ExpectAccept, Source: "package snippet\n"}},
	}

	_, err := New(nil).Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a checker")
}

func TestRun_StaticSyntaxErrorIsAnError(t *testing.T) {
	scenario := &Scenario{
		Name:    "broken",
		Variant: VariantPhantom,
		Checks:  []Check{{Type: CheckStatic, Expect: ExpectReject, Source: "package snippet\n\nfunc {"}},
	}

	_, err := New(testutil.Checker(t)).Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run scenario broken")
}

func TestRun_StaticExpectations(t *testing.T) {
	const mismatch = `package snippet

import "github.com/roach88/idlink/internal/phantom"

var bar phantom.ID[phantom.Bar] = phantom.New[phantom.Foo](1)
`
	const unused = `package snippet

func f() {
	x := 1
}
`
	tests := []struct {
		name       string
		check      Check
		wantPass   bool
		wantDetail string
	}{
		{"reject mismatch", Check{Expect: ExpectReject, Source: mismatch}, true, "rejected with a type mismatch"},
		{"reject with message", Check{Expect: ExpectReject, Source: mismatch, Contains: "cannot use"}, true, "rejected with a type mismatch"},
		{"reject wrong message", Check{Expect: ExpectReject, Source: mismatch, Contains: "no such text"}, false, `no mismatch mentions "no such text"`},
		{"accept mismatch", Check{Expect: ExpectAccept, Source: mismatch}, false, "rejected: "},
		{"reject accepted source", Check{Expect: ExpectReject, Source: "package snippet\n"}, false, "accepted"},
		{"reject other error", Check{Expect: ExpectReject, Source: unused}, false, "rejected without a type mismatch"},
	}

	h := New(testutil.Checker(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check.Type = CheckStatic
			result, err := h.Run(&Scenario{Name: "static", Variant: VariantPhantom, Checks: []Check{tt.check}})
			require.NoError(t, err)
			require.Len(t, result.Checks, 1)
			assert.Equal(t, tt.wantPass, result.Checks[0].Pass)
			assert.Contains(t, result.Checks[0].Detail, tt.wantDetail)
		})
	}
}

func TestRun_InvalidScenario(t *testing.T) {
	_, err := New(nil).Run(&Scenario{Name: "x", Variant: VariantPhantom, Checks: []Check{{Type: CheckAccessor, Kind: "Baz"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := New(nil, WithLogger(logger))
	_, err := h.Run(&Scenario{Name: "logged", Variant: VariantPhantom, Checks: []Check{{Type: CheckAccessor, Kind: "Foo", Raw: 1}}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "scenario finished")
	assert.Contains(t, buf.String(), "scenario=logged")
	assert.Contains(t, buf.String(), "pass=true")
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	h := New(nil, WithLogger(nil))
	assert.NotNil(t, h.logger)
}
