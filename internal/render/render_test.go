package render

import (
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
)

func TestCleanImports(t *testing.T) {
	src := `package p

import (
	"math"
	"strconv"

	"github.com/bearlytools/tagwire/languages/go/mapping"
	"github.com/bearlytools/tagwire/languages/go/structs"
)

var m = &mapping.Map{Name: "M"}

func s(i int) string {
	return strconv.Itoa(i)
}
`
	want := `package p

import (
	"strconv"

	"github.com/bearlytools/tagwire/languages/go/mapping"
)

var m = &mapping.Map{Name: "M"}

func s(i int) string {
	return strconv.Itoa(i)
}
`
	got := string(cleanImports([]byte(src)))
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestCleanImports: -want/+got:\n%s", diff)
	}
}

func TestIsImportLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"\t\"strconv\"\n", true},
		{"\t\"github.com/gostdlib/base/context\"\n", true},
		{"\treturn \"a\" + \"b\"\n", false},
		{"\t\"hello world\"\n", false},
		{"var x = 1\n", false},
	}
	for _, test := range tests {
		if got := isImportLine([]byte(test.line)); got != test.want {
			t.Errorf("TestIsImportLine(%q): got %v, want %v", test.line, got, test.want)
		}
	}
}

func TestLangString(t *testing.T) {
	if Go.String() != "Go" {
		t.Errorf("TestLangString: got %q, want %q", Go.String(), "Go")
	}
	if Unknown.String() != "Lang(0)" {
		t.Errorf("TestLangString: got %q, want %q", Unknown.String(), "Lang(0)")
	}
}

func TestValidateExtensions(t *testing.T) {
	extendee := &mapping.Map{Name: "M", Package: "p"}
	ext := func() *mapping.FieldDescr {
		return &mapping.FieldDescr{Name: "x", Number: 10, Kind: field.KInt32, Cardinality: field.COptional, IsExtension: true, Package: "p"}
	}

	tests := []struct {
		desc string
		ext  Extension
		want string
	}{
		{"nil extendee", Extension{Field: ext()}, "has no extendee"},
		{"nil field", Extension{Extendee: extendee}, "must have IsExtension set"},
		{"extendee from another file", Extension{Extendee: &mapping.Map{Name: "N", Package: "p"}, Field: ext()}, "is not declared in this file"},
	}

	for _, test := range tests {
		f := &File{GoPackage: "p", Package: "p", Messages: []*mapping.Map{extendee}, Extensions: []Extension{test.ext}}
		err := f.Validate()
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("TestValidateExtensions(%s): got err %v, want it to contain %q", test.desc, err, test.want)
		}
	}
}
