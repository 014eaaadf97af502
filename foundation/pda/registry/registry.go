// File: registry.go
// Title: Named Grammar Registry
// Description: Provides a concurrency-safe store of built grammar
//              tables keyed by case-insensitive name, with copy-on-read
//              listings for diagnostic and API surfaces.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial grammar registry implementation

package registry

import (
	"sort"
	"strings"
	"sync"

	ckerrors "github.com/msto63/chomsky/foundation/core/errors"
	cklog "github.com/msto63/chomsky/foundation/core/log"
	"github.com/msto63/chomsky/foundation/pda/grammar"
	"github.com/msto63/chomsky/foundation/utils/stringx"
)

// Options configures a registry instance
type Options struct {
	// Logger receives registration events. Defaults to the package
	// default logger.
	Logger *cklog.Logger
}

// Info summarizes a registered grammar for listings
type Info struct {
	Name         string `json:"name"`
	Goal         string `json:"goal"`
	NonTerminals int    `json:"non_terminals"`
	Productions  int    `json:"productions"`
	Keywords     int    `json:"keywords"`
}

// Registry is a concurrency-safe store of named grammar tables. Names
// are matched case-insensitively. The stored grammars are immutable,
// so Get hands out shared pointers.
type Registry struct {
	grammars map[string]*grammar.Grammar
	logger   *cklog.Logger
	mutex    sync.RWMutex
}

// New creates an empty grammar registry
func New(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = cklog.GetDefault()
	}

	return &Registry{
		grammars: make(map[string]*grammar.Grammar),
		logger:   logger.WithField("component", "grammar-registry"),
	}
}

// Register adds a grammar under its own name. Registering an already
// taken name fails; Remove the old grammar first to replace it.
func (r *Registry) Register(g *grammar.Grammar) error {
	if g == nil {
		return ckerrors.InvalidInput(ckerrors.ModuleRegistry, "Register", nil, "a built grammar")
	}
	if stringx.IsBlank(g.Name()) {
		return ckerrors.ValidationFailed(ckerrors.ModuleRegistry, "name", g.Name(), "must not be blank")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := normalize(g.Name())
	if _, exists := r.grammars[key]; exists {
		return ckerrors.NewBuilder(ckerrors.ModuleRegistry).
			Operation("Register").
			Messagef("grammar %q is already registered", g.Name()).
			WithCode(ckerrors.CodeGrammarDuplicate).
			Detail("grammar", g.Name()).
			Build()
	}
	r.grammars[key] = g

	r.logger.Info("grammar registered", cklog.Fields{
		"grammar":       g.Name(),
		"goal":          g.Goal(),
		"non_terminals": len(g.NonTerminals()),
		"productions":   g.ProductionCount(),
	})
	return nil
}

// Get returns the grammar registered under the given name
func (r *Registry) Get(name string) (*grammar.Grammar, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	g, exists := r.grammars[normalize(name)]
	if !exists {
		return nil, ckerrors.NotFound(ckerrors.ModuleRegistry, "Get", name)
	}
	return g, nil
}

// Has reports whether a grammar is registered under the given name
func (r *Registry) Has(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.grammars[normalize(name)]
	return exists
}

// Remove deletes the grammar registered under the given name
func (r *Registry) Remove(name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := normalize(name)
	g, exists := r.grammars[key]
	if !exists {
		return ckerrors.NotFound(ckerrors.ModuleRegistry, "Remove", name)
	}
	delete(r.grammars, key)

	r.logger.Info("grammar removed", cklog.Fields{"grammar": g.Name()})
	return nil
}

// Names returns the registered grammar names, sorted
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.grammars))
	for _, g := range r.grammars {
		names = append(names, g.Name())
	}

	sort.Strings(names)
	return names
}

// List returns an Info summary per registered grammar, sorted by name
func (r *Registry) List() []Info {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	infos := make([]Info, 0, len(r.grammars))
	for _, g := range r.grammars {
		infos = append(infos, Info{
			Name:         g.Name(),
			Goal:         g.Goal(),
			NonTerminals: len(g.NonTerminals()),
			Productions:  g.ProductionCount(),
			Keywords:     len(g.Keywords()),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Len returns the number of registered grammars
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.grammars)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
