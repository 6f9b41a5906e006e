package persona

// Handler is the required lifecycle surface of a persona. Entry points
// are invoked synchronously on the caller's goroutine and must not call
// back into the registry.
type Handler interface {
	// Init prepares the handler-private context slot on the handle.
	// Called exactly once per handle, before Open.
	Init(h *Handle) error

	// Open prepares the handle to service the given path. Called once,
	// only after a successful Init.
	Open(h *Handle, path string) error

	// Close releases handler-private resources. Called at most once per
	// handle, and only if Init succeeded.
	Close(h *Handle) error
}

// Messenger is the optional message entry point. Handlers that do not
// implement it cause Send to return status.ErrNotImplemented.
type Messenger interface {
	OnMessage(h *Handle, msg []byte) error
}

// Descriptor declares a persona to the registry. Descriptors are values:
// the registry copies them at registration and never mutates them.
type Descriptor struct {
	// Name is a human-readable identifier. Required.
	Name string

	// Version is a free-form version string.
	Version string

	// Extensions lists recognized file extensions, each with the leading
	// dot (".elf"). Matching is case-insensitive. Nil disables
	// extension matching for this persona.
	Extensions []string

	// Magic is the leading byte signature, at most MaxMagicLen bytes.
	// Empty disables magic matching for this persona.
	Magic []byte

	// MIMETypes is carried for tooling but not consulted by resolution.
	MIMETypes []string

	// Handler provides the lifecycle entry points. Required.
	Handler Handler
}

// Handle is a live persona instance, valid from a successful Launch
// until Close. Handles are exclusively owned by their creator; the
// registry never duplicates them.
type Handle struct {
	id    int64
	desc  *Descriptor
	state handleState

	// Ctx is the handler-private context slot. The registry treats it
	// as opaque; handlers populate it in Init and release it in Close.
	Ctx any
}

type handleState uint8

const (
	stateAllocated handleState = iota
	stateInitialized
	stateOpened
	stateClosed
)

// ID returns the handler id the handle was launched from.
func (h *Handle) ID() int64 { return h.id }

// Descriptor returns the descriptor the handle is bound to. The binding
// is set at launch and never changes.
func (h *Handle) Descriptor() *Descriptor { return h.desc }
