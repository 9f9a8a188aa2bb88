package picker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	spinerrors "github.com/spinapp/spin/internal/errors"
)

func fakeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-fzf")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPickReturnsSelection(t *testing.T) {
	p := New(fakeScript(t, "head -n 1"), "40%")

	selection, ok, err := p.Pick([]string{"a.mp3", "b.mp3"}, "Select: ")
	if err != nil {
		t.Fatalf("Pick() error = %v", err)
	}
	if !ok {
		t.Fatal("Pick() ok = false, want true")
	}
	if selection != "a.mp3" {
		t.Errorf("Pick() = %q, want %q", selection, "a.mp3")
	}
}

func TestPickCancelled(t *testing.T) {
	p := New(fakeScript(t, "exit 130"), "40%")

	selection, ok, err := p.Pick([]string{"a.mp3"}, "Select: ")
	if err != nil {
		t.Fatalf("Pick() error = %v, want nil for cancellation", err)
	}
	if ok || selection != "" {
		t.Errorf("Pick() = (%q, %v), want cancelled", selection, ok)
	}
}

func TestPickEmptyOutput(t *testing.T) {
	p := New(fakeScript(t, "cat >/dev/null; exit 0"), "40%")

	_, ok, err := p.Pick([]string{"a.mp3"}, "Select: ")
	if err != nil {
		t.Fatalf("Pick() error = %v", err)
	}
	if ok {
		t.Error("Pick() ok = true for empty selection, want false")
	}
}

func TestPickMissingTool(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "absent"), "40%")

	if _, _, err := p.Pick([]string{"a.mp3"}, "Select: "); err == nil {
		t.Error("Pick() error = nil for missing tool, want error")
	}
}

func TestCheck(t *testing.T) {
	if err := New(fakeScript(t, "true"), "40%").Check(); err != nil {
		t.Errorf("Check() error = %v for existing tool", err)
	}

	err := New("definitely-not-installed-anywhere", "40%").Check()
	if !errors.Is(err, spinerrors.ErrPickerNotFound) {
		t.Errorf("Check() error = %v, want ErrPickerNotFound", err)
	}
}
