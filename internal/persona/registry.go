package persona

import (
	"bytes"
	"strings"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/shared/status"
)

const (
	// MaxHandlers bounds the number of registered personas.
	MaxHandlers = 128

	// MaxMagicLen bounds the magic-byte probe. Descriptors with longer
	// signatures are rejected at registration.
	MaxMagicLen = 64
)

// Registry maps file paths to personas and drives handle lifecycle.
type Registry struct {
	entries []entry
	nextID  int64
	prober  Prober
}

// Each descriptor is its own allocation so handles stay bound to it
// across table compaction.
type entry struct {
	id   int64
	desc *Descriptor
}

// NewRegistry creates a registry probing magic bytes from the host
// filesystem.
func NewRegistry() *Registry {
	return NewRegistryWithProber(fsProber{})
}

// NewRegistryWithProber creates a registry with a custom magic-byte
// prober. Used by tests and callers with virtual path spaces.
func NewRegistryWithProber(p Prober) *Registry {
	return &Registry{nextID: 1, prober: p}
}

// Register adds a persona descriptor and returns its id. Ids are
// positive, unique, and strictly increasing over the registry lifetime;
// registration order is the tie-break order for resolution.
func (r *Registry) Register(desc Descriptor) (int64, error) {
	if desc.Name == "" || desc.Handler == nil {
		return 0, status.ErrInvalidArgument
	}
	if len(desc.Magic) > MaxMagicLen {
		return 0, status.ErrInvalidArgument
	}
	if len(r.entries) >= MaxHandlers {
		return 0, status.ErrCapacityExceeded
	}

	id := r.nextID
	r.nextID++
	r.entries = append(r.entries, entry{id: id, desc: &desc})
	return id, nil
}

// Unregister removes the persona with the given id. Registration order
// of the surviving entries is preserved. The registry does not track
// outstanding handles; unregistering while handles exist is a caller
// bug.
func (r *Registry) Unregister(id int64) error {
	for i := range r.entries {
		if r.entries[i].id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return status.ErrNotFound
}

// Resolve maps a path to a persona id. Extension matches are tried
// first in registration order, then magic-byte matches; the first match
// wins. Probe failures (unreadable file, short file) skip the persona
// and iteration continues.
func (r *Registry) Resolve(path string) (int64, error) {
	if path == "" {
		return 0, status.ErrInvalidArgument
	}

	if ext := extensionOf(path); ext != "" {
		for i := range r.entries {
			for _, e := range r.entries[i].desc.Extensions {
				if strings.EqualFold(e, ext) {
					return r.entries[i].id, nil
				}
			}
		}
	}

	for i := range r.entries {
		magic := r.entries[i].desc.Magic
		if len(magic) == 0 {
			continue
		}
		lead, err := r.prober.Probe(path, len(magic))
		if err != nil || len(lead) < len(magic) {
			continue
		}
		if bytes.Equal(lead, magic) {
			return r.entries[i].id, nil
		}
	}

	return 0, status.ErrNotFound
}

// Launch instantiates the persona with the given id against a path. The
// returned handle has survived both init and open. On an open failure
// the handler's close runs best-effort and its status is discarded; the
// open error is returned.
func (r *Registry) Launch(id int64, path string) (*Handle, error) {
	if path == "" {
		return nil, status.ErrInvalidArgument
	}
	e := r.lookup(id)
	if e == nil {
		return nil, status.ErrNotFound
	}

	h := &Handle{id: e.id, desc: e.desc}
	if err := e.desc.Handler.Init(h); err != nil {
		h.state = stateClosed
		return nil, err
	}
	h.state = stateInitialized

	if err := e.desc.Handler.Open(h, path); err != nil {
		_ = e.desc.Handler.Close(h)
		h.state = stateClosed
		h.Ctx = nil
		return nil, err
	}
	h.state = stateOpened
	return h, nil
}

// Send forwards a message to the handle's persona. Personas without an
// on_message entry point yield ErrNotImplemented; otherwise the
// handler's status is returned verbatim. The registry neither buffers
// nor interprets msg.
func (r *Registry) Send(h *Handle, msg []byte) error {
	if h == nil || h.state != stateOpened {
		return status.ErrInvalidArgument
	}
	m, ok := h.desc.Handler.(Messenger)
	if !ok {
		return status.ErrNotImplemented
	}
	return m.OnMessage(h, msg)
}

// Close runs the persona's close entry point and retires the handle.
// The handler's status is returned. Closing a nil or already-closed
// handle is an argument error.
func (r *Registry) Close(h *Handle) error {
	if h == nil || h.state == stateClosed {
		return status.ErrInvalidArgument
	}
	err := h.desc.Handler.Close(h)
	h.state = stateClosed
	h.Ctx = nil
	return err
}

// List returns the registered descriptors in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.entries))
	for i := range r.entries {
		out[i] = *r.entries[i].desc
	}
	return out
}

// Count returns the number of registered personas.
func (r *Registry) Count() int {
	return len(r.entries)
}

func (r *Registry) lookup(id int64) *entry {
	for i := range r.entries {
		if r.entries[i].id == id {
			return &r.entries[i]
		}
	}
	return nil
}
