// Package script implements the persona for interpreted scripts.
package script

import (
	"bufio"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/persona"
)

// Context is the handler-private state of a launched script persona.
type Context struct {
	SessionID   string
	Path        string
	Interpreter string
	Messages    [][]byte
}

// Persona handles shell and Python scripts. It records the shebang
// interpreter on open and accepts messages as an input feed.
type Persona struct{}

// Descriptor returns the registry declaration for the script persona.
func Descriptor() persona.Descriptor {
	return persona.Descriptor{
		Name:       "script",
		Version:    "1.0.0",
		Extensions: []string{".sh", ".py"},
		Magic:      []byte("#!"),
		MIMETypes:  []string{"text/x-shellscript", "text/x-python"},
		Handler:    &Persona{},
	}
}

// Init allocates the private context and assigns a session id.
func (p *Persona) Init(h *persona.Handle) error {
	h.Ctx = &Context{SessionID: uuid.New().String()}
	return nil
}

// Open binds the persona to a script path and records the shebang
// interpreter when the script is readable.
func (p *Persona) Open(h *persona.Handle, path string) error {
	ctx := h.Ctx.(*Context)
	ctx.Path = path

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err == nil || line != "" {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), "#!"); ok {
			ctx.Interpreter = strings.TrimSpace(rest)
		}
	}
	return nil
}

// OnMessage appends the message to the script's input feed.
func (p *Persona) OnMessage(h *persona.Handle, msg []byte) error {
	ctx := h.Ctx.(*Context)
	ctx.Messages = append(ctx.Messages, append([]byte(nil), msg...))
	return nil
}

// Close drops the input feed.
func (p *Persona) Close(h *persona.Handle) error {
	h.Ctx.(*Context).Messages = nil
	return nil
}
