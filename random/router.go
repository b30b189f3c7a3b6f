package random

import (
	"github.com/tinynum/nprand"
	"github.com/tinynum/nprand/streamcfg"
)

// Backend names one of the two engines behind a Router.
type Backend string

// The two backends every Router carries.
const (
	BackendReference Backend = "reference"
	BackendAlternate Backend = "alternate"
)

// Router routes generation calls to one of two engines based on the stream
// flag read at call time.
//
// Not safe for concurrent use; see the streamcfg package doc.
type Router struct {
	reference nprand.Engine
	alternate nprand.Engine
}

// NewRouter returns a Router over the given engines.
//
// reference services calls while streamcfg.UseNumpyStream() is true,
// alternate while it is false.
func NewRouter(reference, alternate nprand.Engine) *Router {
	return &Router{
		reference: reference,
		alternate: alternate,
	}
}

// SelectedBackend reports which backend would service a call made now.
func (r *Router) SelectedBackend() Backend {
	if streamcfg.UseNumpyStream() {
		return BackendReference
	}
	return BackendAlternate
}

// Engine returns the named backend engine, bypassing the stream flag.
func (r *Router) Engine(b Backend) nprand.Engine {
	if b == BackendReference {
		return r.reference
	}
	return r.alternate
}

func (r *Router) engine() (nprand.Engine, Backend) {
	b := r.SelectedBackend()
	return r.Engine(b), b
}

// Seed reseeds the currently selected engine only. The other engine's state
// is untouched, so the two streams stay independent once diverged.
func (r *Router) Seed(seed int64) {
	e, _ := r.engine()
	e.Seed(seed)
}
