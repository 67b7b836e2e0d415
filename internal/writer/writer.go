// Package writer writes the output of render.Render to a file system. Each language has
// a writer that decides the file name and how the content lands on disk.
package writer

import (
	"fmt"
	"sync"

	"github.com/gopherfs/fs"
	osfs "github.com/gopherfs/fs/io/os"
	"github.com/gostdlib/base/context"

	"github.com/bearlytools/tagwire/internal/render"
	"github.com/bearlytools/tagwire/internal/writer/golang"
	"github.com/bearlytools/tagwire/languages/go/errors"
)

var supported = map[render.Lang]WriteFiles{
	render.Go: &golang.Writer{},
}

// WriteFiles writes the rendered files of one language into a directory.
type WriteFiles interface {
	SetFS(fs.Writer)
	WriteFiles(ctx context.Context, dir string, rendered []render.Rendered) error
}

// Writer writes rendered files for every language to a directory.
type Writer struct {
	fs fs.Writer
}

// Option is an optional argument to New.
type Option func(w *Writer)

// WithFS uses the fs passed to write files to. The default is the OS file system.
func WithFS(fs fs.Writer) Option {
	return func(w *Writer) {
		w.fs = fs
	}
}

// New creates a new Writer.
func New(options ...Option) (*Writer, error) {
	for lang := range render.Supported {
		if _, ok := supported[lang]; !ok {
			return nil, fmt.Errorf("bug: render supports lang %v, but writer does not", lang)
		}
	}

	w := &Writer{}
	for _, o := range options {
		o(w)
	}
	if w.fs == nil {
		fs, err := osfs.New()
		if err != nil {
			return nil, fmt.Errorf("could not create an osfs: %s", err)
		}
		w.fs = fs
	}
	return w, nil
}

// Write writes all rendered content into dir. Languages are written concurrently.
func (w *Writer) Write(ctx context.Context, dir string, rendered []render.Rendered) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, r := range rendered {
		if supported[r.Lang] == nil {
			return errors.E(ctx, errors.CatUser, errors.TypeParameter, fmt.Errorf("writer does not support language: %v", r.Lang))
		}
	}

	// Organize all renders by language.
	m := map[render.Lang][]render.Rendered{}
	for _, r := range rendered {
		m[r.Lang] = append(m[r.Lang], r)
	}

	wg := sync.WaitGroup{}
	errCh := make(chan error, 1)

	for k, v := range m {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			wr := supported[k]
			wr.SetFS(w.fs)

			if err := wr.WriteFiles(ctx, dir, v); err != nil {
				select {
				case errCh <- errors.E(ctx, errors.CatInternal, errors.TypeIO, err):
				default:
				}
				cancel()
			}
		}()
	}
	wg.Wait()
	close(errCh)

	return <-errCh
}
