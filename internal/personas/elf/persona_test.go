package elf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/persona"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/shared/status"
)

func launch(t *testing.T, path string) (*persona.Registry, *persona.Handle, error) {
	t.Helper()
	r := persona.NewRegistry()
	id, err := r.Register(Descriptor())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	h, err := r.Launch(id, path)
	return r, h, err
}

func TestOpenReadsClass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.elf")
	if err := os.WriteFile(path, []byte{0x7f, 'E', 'L', 'F', 0x02, 0x01, 0x01}, 0o755); err != nil {
		t.Fatal(err)
	}

	r, h, err := launch(t, path)
	if err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	defer r.Close(h)

	ctx := h.Ctx.(*Context)
	if ctx.Path != path {
		t.Errorf("path = %q, want %q", ctx.Path, path)
	}
	if ctx.Class != Class64 {
		t.Errorf("class = %s, want %s", ctx.Class, Class64)
	}
}

func TestOpenDeniesNonELF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.elf")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, _, err := launch(t, path)
	if !errors.Is(err, status.ErrDeny) {
		t.Fatalf("got %v, want ErrDeny", err)
	}
}

func TestOpenToleratesMissingImage(t *testing.T) {
	r, h, err := launch(t, "/nonexistent/image.elf")
	if err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	defer r.Close(h)

	if got := h.Ctx.(*Context).Class; got != ClassUnknown {
		t.Errorf("class = %s, want %s", got, ClassUnknown)
	}
}

func TestResolveByMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.bin")
	if err := os.WriteFile(path, []byte{0x7f, 'E', 'L', 'F', 0x01}, 0o755); err != nil {
		t.Fatal(err)
	}

	r := persona.NewRegistry()
	id, _ := r.Register(Descriptor())

	got, err := r.Resolve(path)
	if err != nil || got != id {
		t.Fatalf("Resolve = (%d, %v), want (%d, nil)", got, err, id)
	}
}
