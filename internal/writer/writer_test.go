package writer

import (
	"testing"

	memfs "github.com/gopherfs/fs/io/mem/simple"
	"github.com/gostdlib/base/context"

	"github.com/bearlytools/tagwire/internal/render"
)

func TestWrite(t *testing.T) {
	fs := memfs.New()
	w, err := New(WithFS(fs))
	if err != nil {
		t.Fatalf("TestWrite: New(): %s", err)
	}

	rendered := []render.Rendered{{Package: "pkg", Lang: render.Go, Native: []byte("package pkg\n")}}
	if err := w.Write(context.Background(), "/gen", rendered); err != nil {
		t.Fatalf("TestWrite: Write(): %s", err)
	}
	b, err := fs.ReadFile("/gen/pkg.tw.go")
	if err != nil {
		t.Fatalf("TestWrite: ReadFile(): %s", err)
	}
	if string(b) != "package pkg\n" {
		t.Errorf("TestWrite: got %q", b)
	}
}

func TestWriteUnsupported(t *testing.T) {
	w, err := New(WithFS(memfs.New()))
	if err != nil {
		t.Fatalf("TestWriteUnsupported: New(): %s", err)
	}
	err = w.Write(context.Background(), "/gen", []render.Rendered{{Package: "pkg", Lang: render.Unknown}})
	if err == nil {
		t.Errorf("TestWriteUnsupported: got err == nil, want err != nil")
	}
}
