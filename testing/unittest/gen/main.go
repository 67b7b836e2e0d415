// Command gen renders the protobuf_unittest types into package unittest.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/gostdlib/base/context"
	"go.uber.org/zap"

	"github.com/bearlytools/tagwire/internal/logging"
	"github.com/bearlytools/tagwire/internal/render"
	_ "github.com/bearlytools/tagwire/internal/render/golang"
	"github.com/bearlytools/tagwire/internal/writer"
	"github.com/bearlytools/tagwire/testing/unittest/schema"
)

var (
	dir     = flag.String("dir", ".", "the directory to write the generated file to")
	verbose = flag.Bool("v", false, "log each rendered and written file")
)

func main() {
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		logging.Set(l)
	}

	out, err := filepath.Abs(*dir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	rendered, err := render.Render(ctx, []*render.File{schema.File()}, render.Go)
	if err != nil {
		log.Fatal(err)
	}

	w, err := writer.New()
	if err != nil {
		log.Fatal(err)
	}
	if err := w.Write(ctx, out, rendered); err != nil {
		log.Fatal(err)
	}
}
