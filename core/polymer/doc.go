// Package polymer generates random L/G copolymers and counts their adjacent
// dimers. It is domain-only: no I/O, no logging, no CLI types.
//
// A Generator owns one random stream and is not safe for concurrent use;
// parallel callers build one Generator per worker.
package polymer
