package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/persona"
)

func TestOpenReadsShebang(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh -e\necho up\n"), 0o755); err != nil {
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
	if ctx.Interpreter != "/bin/sh -e" {
		t.Errorf("interpreter = %q, want %q", ctx.Interpreter, "/bin/sh -e")
	}
	if ctx.SessionID == "" {
		t.Error("session id not assigned")
	}
}

func TestOnMessageFeedsInput(t *testing.T) {
	r := persona.NewRegistry()
	id, _ := r.Register(Descriptor())
	h, err := r.Launch(id, "/etc/rc.sh")
	if err != nil {
		t.Fatalf("Launch failed: %v", err)
	}

	if err := r.Send(h, []byte("reload")); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if err := r.Send(h, []byte("stop")); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	ctx := h.Ctx.(*Context)
	if len(ctx.Messages) != 2 || string(ctx.Messages[0]) != "reload" {
		t.Errorf("messages = %q", ctx.Messages)
	}

	if err := r.Close(h); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestResolveByShebangMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool")
	if err := os.WriteFile(path, []byte("#!/usr/bin/env python3\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := persona.NewRegistry()
	id, _ := r.Register(Descriptor())

	// No extension, so resolution falls through to the "#!" magic.
	got, err := r.Resolve(path)
	if err != nil || got != id {
		t.Fatalf("Resolve = (%d, %v), want (%d, nil)", got, err, id)
	}
}
