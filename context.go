package typeinduct

import (
	"fmt"
	"reflect"

	"github.com/pablor21/typeinduct/logger"
)

// Engine bundles the configuration a caller installed at startup. The
// derivation caches themselves (mutability, cycles, copy, equality) are
// process-wide by design (spec §5 "specialization caches... are the only
// shared mutable state") — Engine does not own them, it only carries the
// Options that were applied to configure how they behave, so a caller has
// something concrete to pass around instead of relying on package-level
// state implicitly.
type Engine struct {
	Options *Options
}

// NewEngine applies opts (see Options.Apply) and returns an Engine wrapping
// it. Passing nil uses NewDefaultOptions.
func NewEngine(opts *Options) *Engine {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	opts.Apply()
	return &Engine{Options: opts}
}

func (e *Engine) log() logger.Logger {
	if e.Options != nil && e.Options.Logger != nil {
		return e.Options.Logger
	}
	return logger.NewDefaultLogger()
}

// WarmUp runs WarmUp for types through this Engine's configured logger,
// reporting the memory cost of forcing their derivations to synthesize now.
func (e *Engine) WarmUp(types ...reflect.Type) WarmUpStats {
	s := WarmUp(types...)
	e.log().Info(fmt.Sprintf("warmed up %d type(s): heap %d -> %d bytes, rss %d bytes",
		len(types), s.HeapBytesBefore, s.HeapBytesAfter, s.RSSBytes))
	return s
}
