package asset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/persona"
)

func TestOpenSniffsMIME(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.dat")
	if err := os.WriteFile(path, []byte("plain text payload\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := persona.NewRegistry()
	id, _ := r.Register(Descriptor())
	h, err := r.Launch(id, path)
	if err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	defer r.Close(h)

	ctx := h.Ctx.(*Context)
	if !strings.HasPrefix(ctx.MIME, "text/plain") {
		t.Errorf("mime = %q, want text/plain prefix", ctx.MIME)
	}
}

func TestOpenToleratesMissingFile(t *testing.T) {
	r := persona.NewRegistry()
	id, _ := r.Register(Descriptor())
	h, err := r.Launch(id, "/nonexistent/blob.bin")
	if err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	defer r.Close(h)

	if got := h.Ctx.(*Context).MIME; got != "" {
		t.Errorf("mime = %q, want empty for unreadable asset", got)
	}
}
