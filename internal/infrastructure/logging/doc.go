// Package logging provides structured logging using uber/zap.
//
// Two modes are offered: production (JSON output for machine parsing)
// and development (console output with stacktraces). The persona
// registry and the supervisor never log; logging happens in the layers
// that drive them.
package logging
