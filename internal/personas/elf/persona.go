// Package elf implements the persona for ELF executable images.
package elf

import (
	"os"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/persona"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/shared/status"
)

// Signature is the ELF leading magic, "\x7fELF".
var Signature = []byte{0x7f, 'E', 'L', 'F'}

// Class describes the word size of an ELF image.
type Class string

const (
	ClassUnknown Class = "unknown"
	Class32      Class = "elf32"
	Class64      Class = "elf64"
)

// Context is the handler-private state of a launched ELF persona.
type Context struct {
	Path  string
	Class Class
}

// Persona handles ELF images. It validates the header when the image is
// readable and records the ELF class.
type Persona struct{}

// Descriptor returns the registry declaration for the ELF persona.
func Descriptor() persona.Descriptor {
	return persona.Descriptor{
		Name:       "elf",
		Version:    "1.0.0",
		Extensions: []string{".elf"},
		Magic:      Signature,
		MIMETypes:  []string{"application/x-executable", "application/x-sharedlib"},
		Handler:    &Persona{},
	}
}

// Init allocates the private context slot.
func (p *Persona) Init(h *persona.Handle) error {
	h.Ctx = &Context{Class: ClassUnknown}
	return nil
}

// Open binds the persona to an image path. A readable image must carry
// the ELF magic; an image that cannot be read yet is accepted as-is.
func (p *Persona) Open(h *persona.Handle, path string) error {
	ctx := h.Ctx.(*Context)
	ctx.Path = path

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var head [5]byte
	n, _ := f.Read(head[:])
	if n < len(Signature) {
		return status.ErrDeny
	}
	for i, b := range Signature {
		if head[i] != b {
			return status.ErrDeny
		}
	}
	if n >= 5 {
		switch head[4] {
		case 1:
			ctx.Class = Class32
		case 2:
			ctx.Class = Class64
		}
	}
	return nil
}

// Close releases the private context.
func (p *Persona) Close(h *persona.Handle) error {
	return nil
}
