// Package supervisor starts and stops persona-backed services in
// dependency order.
//
// The supervisor holds a static service table loaded at boot. Starting
// a service first walks its declared dependencies depth-first, so every
// dependency is fully launched before any dependent. Cycle detection
// rides on the state machine itself: re-entering a service that is
// already Starting means the dependency walk looped.
//
// Like the registry it drives, the supervisor is single-threaded and
// silent; callers serialize access and own all logging.
package supervisor
