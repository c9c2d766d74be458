// Package processor contains the core batch logic of doctrans. It walks the
// source tree, skips files already recorded as translated, splits each file
// into chunks, translates them in order, rewrites the file atomically and
// persists progress. This package serves as the main coordinator between
// all other components.
package processor
