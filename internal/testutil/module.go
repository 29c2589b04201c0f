package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/idlink/internal/typecheck"
)

var (
	checkerOnce sync.Once
	checker     *typecheck.Checker
	checkerErr  error
)

// ModuleRoot returns the directory holding this module's go.mod.
func ModuleRoot(t testing.TB) string {
	t.Helper()
	root, err := typecheck.FindModuleRoot(".")
	require.NoError(t, err)
	return root
}

// Checker returns a typecheck.Checker for this module.
//
// The checker is shared by every test in the binary, so the standard
// library is type-checked once. Checker is safe for concurrent use.
func Checker(t testing.TB) *typecheck.Checker {
	t.Helper()
	checkerOnce.Do(func() {
		root, err := typecheck.FindModuleRoot(".")
		if err != nil {
			checkerErr = err
			return
		}
		checker, checkerErr = typecheck.New(root)
	})
	require.NoError(t, checkerErr)
	return checker
}
