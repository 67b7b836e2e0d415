package golang

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/gopherfs/fs"
	"github.com/gostdlib/base/context"
	"go.uber.org/zap"

	"github.com/bearlytools/tagwire/internal/logging"
	"github.com/bearlytools/tagwire/internal/render"
)

// Writer implements writer.WriteFiles for the Go language.
type Writer struct {
	fs fs.Writer
}

func (w *Writer) SetFS(fs fs.Writer) {
	w.fs = fs
}

// FileName is the name of the file the Go output for a schema package is written to.
func FileName(r render.Rendered) string {
	return strings.ReplaceAll(r.Package, ".", "_") + ".tw.go"
}

// WriteFiles writes each rendered file into dir. A file whose content has not changed is
// not rewritten, so build tools that watch modification times see no change. A changed
// file is written over, which requires a file system whose WriteFile overwrites (osfs does,
// io/mem/simple returns fs.ErrExist).
func (w *Writer) WriteFiles(ctx context.Context, dir string, renders []render.Rendered) error {
	for _, r := range renders {
		if err := ctx.Err(); err != nil {
			return err
		}

		p := filepath.Join(dir, FileName(r))
		if w.sameFile(p, r.Native) {
			logging.L().Debug("unchanged", zap.String("path", p))
			continue
		}
		if err := w.fs.WriteFile(p, r.Native, 0o644); err != nil {
			if errors.Is(err, iofs.ErrExist) {
				return fmt.Errorf("package(%s) changed, but the file system will not overwrite file(%s): %w", r.Package, p, err)
			}
			return fmt.Errorf("problem writing package(%s) to file(%s): %w", r.Package, p, err)
		}
		logging.L().Debug("wrote", zap.String("path", p), zap.Int("bytes", len(r.Native)))
	}
	return nil
}

// sameFile determines if the file at path has the same size and sha256 hash as content.
// It is false if the file system cannot be read from.
func (w *Writer) sameFile(path string, content []byte) bool {
	rf, ok := w.fs.(iofs.ReadFileFS)
	if !ok {
		return false
	}
	b, err := rf.ReadFile(path)
	if err != nil || len(b) != len(content) {
		return false
	}
	have := sha256.Sum256(b)
	want := sha256.Sum256(content)
	return bytes.Equal(have[:], want[:])
}
