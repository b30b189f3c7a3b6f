// Package streamcfg holds the process-wide stream selection flag for the
// random package and the yaml configuration that can set it at startup.
//
// The flag is deliberately unsynchronized. Stream selection is a
// single-threaded concern: callers that mutate it from multiple goroutines
// get undefined behavior and must serialize access themselves.
package streamcfg

import (
	"github.com/tinynum/nprand/log"
)

// useNumpyStream defaults to false: the alternate stream services calls
// until something opts into the reference stream.
var useNumpyStream bool

// UseNumpyStream reports whether the reference (numpy-compatible) stream is
// currently selected.
func UseNumpyStream() bool {
	return useNumpyStream
}

// SetUseNumpyStream selects the reference stream when use is true, the
// alternate stream otherwise. It returns the previous value.
func SetUseNumpyStream(use bool) (prev bool) {
	prev = useNumpyStream
	useNumpyStream = use
	return prev
}

// OverrideNumpyStream selects a stream for a limited scope and returns the
// function restoring the previous selection.
//
// Deferring the restore guarantees the prior value comes back on every exit
// path, including panics:
//
//	defer streamcfg.OverrideNumpyStream(true)()
//	// ... code running against the reference stream ...
func OverrideNumpyStream(use bool) (restore func()) {
	prev := SetUseNumpyStream(use)
	log.Debugf("streamcfg: stream override use_numpy=%v (was %v)", use, prev)
	return func() {
		useNumpyStream = prev
		log.Debugf("streamcfg: stream override restored to use_numpy=%v", prev)
	}
}
