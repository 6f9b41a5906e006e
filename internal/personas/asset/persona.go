// Package asset implements a catch-all persona for data files. It
// sniffs the content type on open so callers can inspect what they
// launched.
package asset

import (
	"github.com/gabriel-vasile/mimetype"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/persona"
)

// Context is the handler-private state of a launched asset persona.
type Context struct {
	Path     string
	MIME     string
	ByteSize int64
}

// Persona handles opaque data assets.
type Persona struct{}

// Descriptor returns the registry declaration for the asset persona.
func Descriptor() persona.Descriptor {
	return persona.Descriptor{
		Name:       "asset",
		Version:    "1.0.0",
		Extensions: []string{".dat", ".bin", ".png", ".jpg", ".gz", ".zip"},
		MIMETypes:  []string{"application/octet-stream"},
		Handler:    &Persona{},
	}
}

// Init allocates the private context slot.
func (p *Persona) Init(h *persona.Handle) error {
	h.Ctx = &Context{}
	return nil
}

// Open records the asset path and its sniffed MIME type. Detection is
// best-effort; an unreadable asset keeps an empty MIME.
func (p *Persona) Open(h *persona.Handle, path string) error {
	ctx := h.Ctx.(*Context)
	ctx.Path = path

	if mt, err := mimetype.DetectFile(path); err == nil {
		ctx.MIME = mt.String()
	}
	return nil
}

// Close releases the private context.
func (p *Persona) Close(h *persona.Handle) error {
	return nil
}
