// Package editor implements the editing core: an extensible parser and
// serializer over the document model, the cursor/source position map they
// maintain, and the edit engine that translates cursor-space commands into
// source mutations. A Runtime carries an explicit, constructor-injected,
// ordered extension list; there is no process-wide registry.
package editor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Runtime is an immutable set of ordered extensions plus the dispatch logic
// shared by parse, serialize, normalize, and edit. Runtimes are safe to reuse
// across states.
type Runtime struct {
	exts   []Extension
	logger *log.Logger
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger routes the runtime's diagnostics (unclaimed atoms, misbehaving
// parse results) to the given logger. The default runtime is silent.
func WithLogger(logger *log.Logger) Option {
	return func(rt *Runtime) {
		rt.logger = logger
	}
}

// NewRuntime creates a Runtime with the given extensions. Order is
// significant: earlier extensions get first refusal in every hook chain.
// Duplicate extension names are a configuration error.
func NewRuntime(exts []Extension, opts ...Option) (*Runtime, error) {
	seen := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		if _, dup := seen[ext.Name()]; dup {
			return nil, fmt.Errorf("editor: duplicate extension %q", ext.Name())
		}
		seen[ext.Name()] = struct{}{}
	}

	rt := &Runtime{
		exts:   exts,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt, nil
}

// Extensions returns the registered extensions in registration order.
// The returned slice must not be modified.
func (rt *Runtime) Extensions() []Extension {
	return rt.exts
}
