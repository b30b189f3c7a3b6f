// Package nprand defines the engine contract shared by the switchable
// random-number backends in this module.
//
// The subpackages provide the actual functionality:
//
// 1. mtstream and xorstream implement Engine with two independent,
// seed-reproducible generators.
//
// 2. random exposes a numpy-style function surface and routes every call to
// one of the two engines based on the stream flag in streamcfg.
//
// 3. ndarray is the minimal array type the random package wraps sized
// results into.
package nprand
