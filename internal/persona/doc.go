// Package persona implements the persona dispatch registry: a table of
// pluggable file handlers resolved by path extension or leading magic
// bytes, each driven through a uniform init/open/on_message/close
// lifecycle.
//
// The registry is deliberately single-threaded: it takes no locks and
// must not be shared across goroutines without external serialization.
// It performs no I/O except the bounded magic-byte probe during
// resolution, never retries, and never logs; error reporting belongs to
// the caller.
package persona
