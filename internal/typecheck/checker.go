package typecheck

import (
	"fmt"
	"go/ast"
	"go/build"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// Checker type-checks Go source against the packages of one module.
type Checker struct {
	root       string
	modulePath string
	fset       *token.FileSet
	std        types.ImporterFrom
	logger     *slog.Logger

	mu      sync.Mutex
	pkgs    map[string]*types.Package
	loading map[string]bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger used for package loading diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// New creates a Checker for the module rooted at root.
// root must contain a go.mod.
func New(root string, opts ...Option) (*Checker, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve module root: %w", err)
	}
	modulePath, err := ReadModulePath(abs)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	std, ok := importer.ForCompiler(fset, "source", nil).(types.ImporterFrom)
	if !ok {
		return nil, fmt.Errorf("source importer does not support ImportFrom")
	}

	c := &Checker{
		root:       abs,
		modulePath: modulePath,
		fset:       fset,
		std:        std,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		pkgs:       make(map[string]*types.Package),
		loading:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Root returns the module root directory.
func (c *Checker) Root() string { return c.root }

// ModulePath returns the module path from go.mod.
func (c *Checker) ModulePath() string { return c.modulePath }

// CheckFile reads and checks a single Go source file.
func (c *Checker) CheckFile(filename string) (*Result, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return c.CheckSource(filename, src)
}

// CheckSource type-checks src as a single-file package.
//
// A syntax error is returned as an error: the source never reached the type
// checker. Type errors are returned in the Result, and the error is nil.
func (c *Checker) CheckSource(filename string, src []byte) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	file, err := parser.ParseFile(c.fset, filename, src, parser.AllErrors|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	result := &Result{File: filename}
	conf := types.Config{
		Importer: (*moduleImporter)(c),
		Error: func(err error) {
			result.add(newDiagnostic(err))
		},
	}

	// Check returns the first error, which Error has already recorded.
	_, _ = conf.Check(path.Join("snippet", file.Name.Name), c.fset, []*ast.File{file}, nil)

	c.logger.Debug("checked source",
		"file", filename,
		"diagnostics", len(result.Diagnostics),
		"mismatches", len(result.Mismatches()),
	)
	return result, nil
}

// moduleImporter resolves imports for CheckSource. It runs with c.mu held
// and must not lock it again.
type moduleImporter Checker

func (m *moduleImporter) Import(importPath string) (*types.Package, error) {
	return m.ImportFrom(importPath, "", 0)
}

func (m *moduleImporter) ImportFrom(importPath, dir string, mode types.ImportMode) (*types.Package, error) {
	c := (*Checker)(m)
	if pkg, ok := c.pkgs[importPath]; ok {
		return pkg, nil
	}
	if isStandard(importPath) {
		if dir == "" {
			dir = c.root
		}
		return c.std.ImportFrom(importPath, dir, mode)
	}
	return c.load(importPath)
}

// load parses and type-checks a non-standard package, caching the result.
func (c *Checker) load(importPath string) (*types.Package, error) {
	if c.loading[importPath] {
		return nil, fmt.Errorf("import cycle through %s", importPath)
	}
	c.loading[importPath] = true
	defer delete(c.loading, importPath)

	bp, err := c.locate(importPath)
	if err != nil {
		return nil, fmt.Errorf("locate %s: %w", importPath, err)
	}

	files := make([]*ast.File, 0, len(bp.GoFiles))
	for _, name := range bp.GoFiles {
		f, err := parser.ParseFile(c.fset, filepath.Join(bp.Dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", importPath, err)
		}
		files = append(files, f)
	}

	conf := types.Config{Importer: (*moduleImporter)(c)}
	pkg, err := conf.Check(importPath, c.fset, files, nil)
	if err != nil {
		return nil, fmt.Errorf("type-check %s: %w", importPath, err)
	}

	c.logger.Debug("loaded package", "path", importPath, "files", len(files))
	c.pkgs[importPath] = pkg
	return pkg, nil
}

// locate finds the source directory and files of a package. Packages of the
// checked module are read from the module root directly; anything else goes
// through go/build in module mode.
func (c *Checker) locate(importPath string) (*build.Package, error) {
	if importPath == c.modulePath || strings.HasPrefix(importPath, c.modulePath+"/") {
		rel := strings.TrimPrefix(strings.TrimPrefix(importPath, c.modulePath), "/")
		return build.Default.ImportDir(filepath.Join(c.root, filepath.FromSlash(rel)), 0)
	}
	return build.Default.Import(importPath, c.root, 0)
}

// isStandard reports whether importPath names a standard library package:
// its first element has no dot.
func isStandard(importPath string) bool {
	first, _, _ := strings.Cut(importPath, "/")
	return !strings.Contains(first, ".")
}
