/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package primtest checks type constraints the way the compiler does, so that compile-time rejection can be tested.
package primtest

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"runtime"

	"github.com/go-logr/logr"
	"golang.org/x/tools/go/packages"

	"github.com/ARM-software/just-prim-int/commonerrors"
)

const loadMode = packages.NeedName | packages.NeedTypes | packages.NeedTypesSizes | packages.NeedImports | packages.NeedDeps

// Term is an element of the type set of a constraint.
type Term struct {
	Type  types.Type
	Tilde bool
}

// String returns the term as written in a constraint e.g. `~int`.
func (t Term) String() string {
	if t.Tilde {
		return "~" + t.Type.String()
	}
	return t.Type.String()
}

// Inspector answers questions about the constraints declared in a loaded package.
// It is immutable once loaded and can be shared between goroutines.
type Inspector struct {
	pkg    *types.Package
	sizes  types.Sizes
	logger logr.Logger
}

// Load loads and type-checks the package described by `cfg`.
func Load(ctx context.Context, cfg *Config) (inspector *Inspector, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}
	logger := cfg.Logger
	pkgCfg := &packages.Config{
		Context:    ctx,
		Mode:       loadMode,
		Dir:        cfg.Dir,
		BuildFlags: cfg.BuildFlags,
		Logf:       packagesLogf(logger),
	}
	pkgs, err := packages.Load(pkgCfg, cfg.Package)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrNotFound, err, "could not load package %v", cfg.Package)
		return
	}
	if len(pkgs) != 1 {
		err = commonerrors.WrapErrorf(commonerrors.ErrNotFound, nil, "expected exactly one package matching %v but found %d", cfg.Package, len(pkgs))
		return
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		loadErrors := make([]error, 0, len(pkg.Errors))
		for i := range pkg.Errors {
			loadErrors = append(loadErrors, pkg.Errors[i])
		}
		err = commonerrors.WrapErrorf(commonerrors.ErrNotFound, errors.Join(loadErrors...), "could not load package %v", cfg.Package)
		return
	}
	if pkg.Types == nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrUndefined, nil, "no type information for package %v", cfg.Package)
		return
	}
	sizes := pkg.TypesSizes
	if sizes == nil {
		sizes = types.SizesFor("gc", runtime.GOARCH)
	}
	logger.V(1).Info("loaded package", "package", pkg.PkgPath, "name", pkg.Name)
	inspector = &Inspector{
		pkg:    pkg.Types,
		sizes:  sizes,
		logger: logger.WithValues("package", pkg.PkgPath),
	}
	return
}

// packagesLogf routes the go/packages debug trace to `logger` at V(1).
func packagesLogf(logger logr.Logger) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		logger.V(1).Info(fmt.Sprintf(format, args...))
	}
}

// Package returns the type-checked package.
func (i *Inspector) Package() *types.Package {
	return i.pkg
}

// Sizes returns the sizes of the architecture the package was loaded for.
func (i *Inspector) Sizes() types.Sizes {
	return i.sizes
}

// LookupType resolves `name` as a predeclared type (e.g. `int8`) or as a type declared in the loaded package (e.g. `Int128`).
func (i *Inspector) LookupType(name string) (types.Type, error) {
	obj := i.pkg.Scope().Lookup(name)
	if obj == nil {
		obj = types.Universe.Lookup(name)
	}
	if obj == nil {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrNotFound, nil, "type %v", name)
	}
	typeName, ok := obj.(*types.TypeName)
	if !ok {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrUnsupported, nil, "%v is not a type", name)
	}
	return typeName.Type(), nil
}

// Constraint returns the interface of the type constraint called `name`.
func (i *Inspector) Constraint(name string) (*types.Interface, error) {
	obj := i.pkg.Scope().Lookup(name)
	if obj == nil {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrNotFound, nil, "constraint %v in %v", name, i.pkg.Path())
	}
	typeName, ok := obj.(*types.TypeName)
	if !ok {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrUnsupported, nil, "%v is not a type", name)
	}
	iface, ok := typeName.Type().Underlying().(*types.Interface)
	if !ok || iface.IsMethodSet() {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrUnsupported, nil, "%v is not a type set constraint", name)
	}
	return iface, nil
}

// Satisfies reports whether `t` satisfies the constraint called `name`.
func (i *Inspector) Satisfies(t types.Type, name string) (bool, error) {
	iface, err := i.Constraint(name)
	if err != nil {
		return false, err
	}
	return types.Satisfies(t, iface), nil
}

// Members returns the type set of the constraint called `name`, following embedded constraints.
func (i *Inspector) Members(name string) (members []Term, err error) {
	iface, err := i.Constraint(name)
	if err != nil {
		return
	}
	var candidates []Term
	collectTerms(iface, &candidates)
	for j := range candidates {
		// Embedded elements intersect: only keep what the whole constraint admits.
		if types.Satisfies(candidates[j].Type, iface) {
			members = append(members, candidates[j])
		}
	}
	i.logger.V(1).Info("computed type set", "constraint", name, "members", len(members))
	return
}

func collectTerms(iface *types.Interface, terms *[]Term) {
	for j := 0; j < iface.NumEmbeddeds(); j++ {
		switch embedded := iface.EmbeddedType(j).(type) {
		case *types.Union:
			for k := 0; k < embedded.Len(); k++ {
				addTerm(embedded.Term(k).Type(), embedded.Term(k).Tilde(), terms)
			}
		default:
			addTerm(embedded, false, terms)
		}
	}
}

func addTerm(t types.Type, tilde bool, terms *[]Term) {
	if nested, ok := t.Underlying().(*types.Interface); ok {
		collectTerms(nested, terms)
		return
	}
	for j := range *terms {
		if types.Identical((*terms)[j].Type, t) {
			(*terms)[j].Tilde = (*terms)[j].Tilde || tilde
			return
		}
	}
	*terms = append(*terms, Term{Type: t, Tilde: tilde})
}

// SizeBounds returns the smallest and largest size in bytes of the members of the constraint called `name`.
func (i *Inspector) SizeBounds(name string) (minSize, maxSize int64, err error) {
	members, err := i.Members(name)
	if err != nil {
		return
	}
	if len(members) == 0 {
		err = commonerrors.WrapErrorf(commonerrors.ErrUndefined, nil, "constraint %v has an empty type set", name)
		return
	}
	minSize = i.sizes.Sizeof(members[0].Type)
	maxSize = minSize
	for j := range members[1:] {
		size := i.sizes.Sizeof(members[j+1].Type)
		minSize = min(minSize, size)
		maxSize = max(maxSize, size)
	}
	return
}

// Check type-checks the Go source `src`, which may import the loaded package.
// Any type-checking diagnostic is reported as commonerrors.ErrUnsatisfied.
func (i *Inspector) Check(src string) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "snippet.go", src, parser.AllErrors)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "could not parse source")
	}
	var diagnostics []error
	conf := types.Config{
		Importer: &packageImporter{loaded: i.pkg, fallback: importer.ForCompiler(fset, "source", nil)},
		Sizes:    i.sizes,
		Error: func(err error) {
			diagnostics = append(diagnostics, err)
		},
	}
	_, _ = conf.Check(file.Name.Name, fset, []*ast.File{file}, nil)
	if len(diagnostics) == 0 {
		return nil
	}
	i.logger.V(1).Info("source rejected", "diagnostics", len(diagnostics))
	return commonerrors.WrapError(commonerrors.ErrUnsatisfied, errors.Join(diagnostics...), "source does not type-check")
}

type packageImporter struct {
	loaded   *types.Package
	fallback types.Importer
}

func (p *packageImporter) Import(path string) (*types.Package, error) {
	if pkg := findImport(p.loaded, path, map[*types.Package]bool{}); pkg != nil {
		return pkg, nil
	}
	return p.fallback.Import(path)
}

func findImport(pkg *types.Package, path string, visited map[*types.Package]bool) *types.Package {
	if pkg == nil || visited[pkg] {
		return nil
	}
	visited[pkg] = true
	if pkg.Path() == path {
		return pkg
	}
	for _, imported := range pkg.Imports() {
		if found := findImport(imported, path, visited); found != nil {
			return found
		}
	}
	return nil
}
