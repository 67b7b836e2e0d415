// Package golang implements the Go language renderer.
package golang

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/tagwire/internal/render"
)

//go:embed templates/*
var f embed.FS
var templates *template.Template

func init() {
	t, err := template.ParseFS(f, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
	templates = t

	if _, ok := render.Supported[render.Go]; ok {
		panic("someone alread registered the Go language renderer")
	}
	render.Supported[render.Go] = Renderer{}
}

type fileData struct {
	Package    string
	GoPackage  string
	Enums      []enumData
	Messages   []*messageData
	Extensions []extData
	// Links set FieldDescr.Message at init time. Messages can refer to each other (or
	// themselves), which package level initialization cannot express.
	Links []link
}

type enumData struct {
	GoName   string
	FullName string
	Var      string
	Values   []enumValue
}

type enumValue struct {
	Const  string
	Name   string
	Number int32
}

type messageData struct {
	GoName   string
	Name     string
	Package  string
	FullName string
	Mapping  string
	Fields   []*FieldGenerator
}

type extData struct {
	GoName           string
	Extendee         string
	ExtendeeFullName string
	Init             string
}

type link struct {
	Target  string
	Mapping string
}

// Renderer implements render.Renderer for the Go language.
type Renderer struct{}

// Render implements render.Renderer.Render().
func (r Renderer) Render(ctx context.Context, file *render.File) ([]byte, error) {
	data, err := newFileData(file)
	if err != nil {
		return nil, err
	}

	buff := bytes.Buffer{}
	if err := templates.ExecuteTemplate(&buff, "tagwire.tmpl", data); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

func newFileData(file *render.File) (*fileData, error) {
	n := names{pkg: file.Package}
	data := &fileData{
		Package:   file.Package,
		GoPackage: file.GoPackage,
	}

	for _, e := range file.Enums {
		ed := enumData{
			GoName:   n.enum(e),
			FullName: e.Name,
			Var:      n.enumVar(e),
		}
		for _, v := range e.Values {
			ed.Values = append(ed.Values, enumValue{Const: ed.GoName + "_" + v.Name, Name: v.Name, Number: v.Number})
		}
		data.Enums = append(data.Enums, ed)
	}

	for _, m := range file.Messages {
		md := &messageData{
			GoName:   n.message(m),
			Name:     m.Name,
			Package:  m.Package,
			FullName: qualify(m.Package, m.Name),
			Mapping:  n.mapping(m),
		}
		for _, fd := range m.Fields {
			fg, err := newFieldGenerator(n, md.GoName, fd)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", m.Name, fd.Name, err)
			}
			md.Fields = append(md.Fields, fg)
			if fd.Message != nil {
				data.Links = append(data.Links, link{Target: fg.Handle, Mapping: n.mapping(fd.Message)})
			}
		}
		data.Messages = append(data.Messages, md)
	}

	for _, x := range file.Extensions {
		lit, err := initializer(n, x.Field)
		if err != nil {
			return nil, fmt.Errorf("extension %s: %w", x.Field.Name, err)
		}
		ed := extData{
			GoName:           n.extension(x.Field),
			Extendee:         n.mapping(x.Extendee),
			ExtendeeFullName: qualify(x.Extendee.Package, x.Extendee.Name),
			Init:             lit,
		}
		if x.Field.Message != nil {
			data.Links = append(data.Links, link{Target: ed.GoName, Mapping: n.mapping(x.Field.Message)})
		}
		data.Extensions = append(data.Extensions, ed)
	}
	return data, nil
}

func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
