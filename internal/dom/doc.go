// Package dom is the tree capability layer the pagination engine runs on.
//
// It wraps golang.org/x/net/html nodes with the small surface the engine
// needs: CSS-selector queries (cascadia), closest-ancestor lookup, class and
// attribute manipulation, inline-style display handling, element construction
// and serialization. Trees built in memory through this package double as the
// test fixture; there is no separate fake implementation.
package dom
