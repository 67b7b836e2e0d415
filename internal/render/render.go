// Package render sets up the interface for rendering message types to a language native representation.
// It also supports registering the handlers of those renderers (which are in other packages).
package render

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"
	"sync"

	"github.com/gostdlib/base/context"
	"go.uber.org/zap"

	"github.com/bearlytools/tagwire/internal/conversions"
	"github.com/bearlytools/tagwire/internal/logging"
	"github.com/bearlytools/tagwire/languages/go/errors"
	"github.com/bearlytools/tagwire/languages/go/mapping"
)

// Lang represents a programming language we can render message types to.
type Lang uint8

const (
	Unknown Lang = 0
	Go      Lang = 1
)

func (l Lang) String() string {
	switch l {
	case Go:
		return "Go"
	}
	return fmt.Sprintf("Lang(%d)", uint8(l))
}

// Supported is langauges that we have registered support for.
var Supported = map[Lang]Renderer{}

// Renderer renders a language native file from a File.
type Renderer interface {
	Render(ctx context.Context, f *File) ([]byte, error)
}

// File is a set of types that are rendered together into one output file.
type File struct {
	// GoPackage is the name of the Go package the output is in.
	GoPackage string
	// Package is the schema package the types are declared in. Every Map and EnumDescr
	// in the File must be in this package.
	Package string
	// Enums are the enumerations declared in the file.
	Enums []*mapping.EnumDescr
	// Messages are the message types declared in the file. Nested types are named with
	// their parent, such as "Outer.Inner".
	Messages []*mapping.Map
	// Extensions are the extensions declared in the file.
	Extensions []Extension
}

// Extension is an extension field declared in a File.
type Extension struct {
	// Extendee is the message type being extended.
	Extendee *mapping.Map
	// Field is the extension. It must have IsExtension set.
	Field *mapping.FieldDescr
}

// Validate checks that f is self contained: every message and enum a field refers to is
// declared in f.
func (f *File) Validate() error {
	if f.GoPackage == "" {
		return fmt.Errorf("file for package %q has no GoPackage", f.Package)
	}

	msgs := map[*mapping.Map]bool{}
	names := map[string]bool{}
	for i, m := range f.Messages {
		if m == nil {
			return fmt.Errorf("message at index %d is nil", i)
		}
		if m.Package != f.Package {
			return fmt.Errorf("message %s is in package %q, not %q", m.Name, m.Package, f.Package)
		}
		if names[m.Name] {
			return fmt.Errorf("message %s is declared twice", m.Name)
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("message %s: %w", m.Name, err)
		}
		names[m.Name] = true
		msgs[m] = true
	}
	enums := map[*mapping.EnumDescr]bool{}
	for i, e := range f.Enums {
		if e == nil {
			return fmt.Errorf("enum at index %d is nil", i)
		}
		if !strings.HasPrefix(e.Name, f.Package+".") {
			return fmt.Errorf("enum %s is not in package %q", e.Name, f.Package)
		}
		enums[e] = true
	}

	check := func(owner string, fd *mapping.FieldDescr) error {
		if fd.Message != nil && !msgs[fd.Message] {
			return fmt.Errorf("%s.%s: message type %s is not declared in this file", owner, fd.Name, fd.Message.Name)
		}
		if fd.Enum != nil && !enums[fd.Enum] {
			return fmt.Errorf("%s.%s: enum %s is not declared in this file", owner, fd.Name, fd.Enum.Name)
		}
		return nil
	}
	for _, m := range f.Messages {
		for _, fd := range m.Fields {
			if err := check(m.Name, fd); err != nil {
				return err
			}
		}
	}
	for i, x := range f.Extensions {
		if x.Extendee == nil {
			return fmt.Errorf("extension %d has no extendee", i)
		}
		if x.Field == nil || !x.Field.IsExtension {
			return fmt.Errorf("extension of %s must have IsExtension set", x.Extendee.Name)
		}
		if !msgs[x.Extendee] {
			return fmt.Errorf("extension %s: extendee %s is not declared in this file", x.Field.Name, x.Extendee.Name)
		}
		if err := x.Field.Validate(); err != nil {
			return fmt.Errorf("extension: %w", err)
		}
		if err := check(f.Package, x.Field); err != nil {
			return err
		}
	}
	return nil
}

// Rendered represents rendered output for a language.
type Rendered struct {
	// Package is the schema package this represents.
	Package string
	// Lang is the language this is for.
	Lang Lang
	// Native is the output for the language.
	Native []byte
}

// Render is used to render a set of languages from the Files. The output is ordered by
// package and then language.
func Render(ctx context.Context, files []*File, langs ...Lang) ([]Rendered, error) {
	out := make([]Rendered, 0, len(langs)*len(files))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for i, l := range langs {
		_, ok := Supported[l]
		if !ok {
			return nil, errors.E(ctx, errors.CatUser, errors.TypeParameter, fmt.Errorf("language %v is not supported", langs[i]))
		}
	}
	for _, f := range files {
		if err := f.Validate(); err != nil {
			return nil, errors.E(ctx, errors.CatUser, errors.TypeRender, err)
		}
	}

	wg := sync.WaitGroup{}
	mu := sync.Mutex{}
	errCh := make(chan error, 1)

	for i := 0; i < len(langs); i++ {
		lang := langs[i]
		r := Supported[lang]

		for _, f := range files {
			wg.Add(1)
			go func() {
				defer wg.Done()
				b, err := renderOne(ctx, r, lang, f)
				if err != nil {
					select {
					case errCh <- err:
					default:
					}
					cancel()
					return
				}

				r := Rendered{
					Package: f.Package,
					Lang:    lang,
					Native:  b,
				}

				mu.Lock()
				out = append(out, r)
				mu.Unlock()
			}()
		}
	}
	wg.Wait()
	select {
	case err := <-errCh:
		return nil, err
	default:
	}

	slices.SortFunc(out, func(a, b Rendered) int {
		if c := strings.Compare(a.Package, b.Package); c != 0 {
			return c
		}
		return int(a.Lang) - int(b.Lang)
	})
	return out, nil
}

func renderOne(ctx context.Context, r Renderer, lang Lang, f *File) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := r.Render(ctx, f)
	if err != nil {
		return nil, errors.E(ctx, errors.CatInternal, errors.TypeRender, fmt.Errorf("rendering %s for %v: %w", f.Package, lang, err))
	}
	if lang == Go {
		b = cleanImports(b)
		fb, err := format.Source(b)
		if err != nil {
			return nil, errors.E(ctx, errors.CatInternal, errors.TypeRender, fmt.Errorf("formatting %s for %v: %w", f.Package, lang, err))
		}
		b = fb
	}
	logging.L().Debug(
		"rendered file",
		zap.String("package", f.Package),
		zap.Stringer("lang", lang),
		zap.Int("messages", len(f.Messages)),
		zap.Int("enums", len(f.Enums)),
		zap.Int("extensions", len(f.Extensions)),
	)
	return b, nil
}

type importCheck struct {
	path string
	find string
}

var findImports = []importCheck{
	{"math", "math."},
	{"strconv", "strconv."},
	{"github.com/gostdlib/base/context", "context."},
	{"google.golang.org/protobuf/encoding/protowire", "protowire."},
	{"github.com/bearlytools/tagwire/languages/go/field", "field."},
	{"github.com/bearlytools/tagwire/languages/go/mapping", "mapping."},
	{"github.com/bearlytools/tagwire/languages/go/reflect", "reflect."},
	{"github.com/bearlytools/tagwire/languages/go/reflect/runtime", "runtime."},
	{"github.com/bearlytools/tagwire/languages/go/structs", "structs."},
}

// cleanImports drops the import lines of packages whose selector never appears in b.
// Generated files import everything they might need and rely on this to trim the list.
func cleanImports(b []byte) []byte {
	lines := bytes.SplitAfter(b, []byte("\n"))
	remove := map[string]bool{}
	for _, ic := range findImports {
		remove[ic.path] = true
	}

	for _, line := range lines {
		if isImportLine(line) {
			continue
		}
		for _, ic := range findImports {
			if bytes.Contains(line, conversions.UnsafeGetBytes(ic.find)) {
				delete(remove, ic.path)
			}
		}
	}

	out := &bytes.Buffer{}
	for _, line := range lines {
		if isImportLine(line) && remove[conversions.ByteSlice2String(importPath(line))] {
			continue
		}
		out.Write(line)
	}
	return out.Bytes()
}

func importPath(line []byte) []byte {
	without := bytes.TrimSpace(line)
	without = bytes.TrimPrefix(without, []byte(`"`))
	return bytes.TrimSuffix(without, []byte(`"`))
}

// isImportLine reports if line is a quoted path on its own, as in an import block.
func isImportLine(line []byte) bool {
	t := bytes.TrimSpace(line)
	return len(t) > 2 && t[0] == '"' && t[len(t)-1] == '"' && !bytes.ContainsAny(t[1:len(t)-1], "\" ")
}
