package lint

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedImports | packages.NeedTypes | packages.NeedTypesSizes |
	packages.NeedSyntax | packages.NeedTypesInfo

// Loader loads and caches Go packages.
type Loader struct {
	dir   string
	cache map[string][]*packages.Package
	mu    sync.RWMutex
}

// NewLoader makes a loader resolving patterns relative to dir.  An empty
// dir means the current directory.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string][]*packages.Package),
	}
}

// Load loads the packages matching patterns.
func (l *Loader) Load(patterns ...string) ([]*packages.Package, error) {
	key := strings.Join(patterns, "\x00")
	l.mu.RLock()
	if pkgs, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return pkgs, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	if pkgs, ok := l.cache[key]; ok {
		return pkgs, nil
	}
	cfg := &packages.Config{Mode: loadMode, Dir: l.dir}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %v: %w", patterns, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%v matched no packages", patterns)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("%w %s: %v", ErrLoad, pkg.PkgPath, pkg.Errors[0])
		}
	}
	l.cache[key] = pkgs
	return pkgs, nil
}
