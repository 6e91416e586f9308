package filters

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestMakeUnknown(t *testing.T) {
	_, err := Make("no-such-filter", nil)
	var uerr *UnknownError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownError, got %v", err)
	}
	if uerr.Name != "no-such-filter" {
		t.Errorf("expected name %q, got %q", "no-such-filter", uerr.Name)
	}
	if Registered("no-such-filter") {
		t.Errorf("Registered returned true for unknown filter")
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	names := Names()
	for _, want := range []string{"css", "cssmin", "exec", "htmlmin", "jsmin", "markdown"} {
		if !Registered(want) {
			t.Errorf("filter %q is not registered", want)
		}
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Names() = %v doesn't contain %q", names, want)
		}
	}
}

func TestMinifiers(t *testing.T) {
	var tests = []struct {
		name    string
		options Options
		in, out string
	}{
		{"css", nil, ".x { color : red ; }", ".x{color:red}"},
		{"cssmin", nil, ".x { color: red; }", ".x{color:red}"},
		{"css", Options{"precision": 2}, ".x{width:1.2345px}", ".x{width:1.2px}"},
		{"css", Options{"inline": true}, "color : red ;", "color:red"},
		{"css", Options{"inline": true, "precision": 2}, "width : 1.2345px", "width:1.2px"},
	}
	for i, v := range tests {
		f, err := Make(v.name, v.options)
		if err != nil {
			t.Fatalf("%d: %s", i, err)
		}
		out, err := f.Apply([]byte(v.in))
		if err != nil {
			t.Fatalf("%d: %s", i, err)
		}
		if string(out) != v.out {
			t.Errorf("%d: %s: expected %q, got %q", i, v.name, v.out, out)
		}
	}
}

func TestCSSKeepCSS2(t *testing.T) {
	f, err := Make("css", Options{"keep_css2": true})
	if err != nil {
		t.Fatal(err)
	}
	out, err := f.Apply([]byte(".x { color : rgba(255, 0, 0, 0.5) ; }"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte(".x{color:rgba(")) || bytes.Contains(out, []byte("#")) {
		t.Errorf("expected CSS2 color, got %q", out)
	}
	if _, err := Make("css", Options{"keep_css2": "yes"}); err == nil {
		t.Errorf("expected error for string keep_css2")
	}
}

func TestCSSBadOption(t *testing.T) {
	if _, err := Make("css", Options{"precision": "high"}); err == nil {
		t.Errorf("expected error for string precision")
	}
}

func TestJSMin(t *testing.T) {
	f, err := Make("jsmin", nil)
	if err != nil {
		t.Fatal(err)
	}
	in := "var a = 1;   // comment\nvar b = 2;\n"
	out, err := f.Apply([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(out, []byte("comment")) || !bytes.Contains(out, []byte("var a=1;")) {
		t.Errorf("unexpected jsmin output %q", out)
	}
}

func TestHTMLMin(t *testing.T) {
	f, err := Make("htmlmin", Options{"minify_styles": true})
	if err != nil {
		t.Fatal(err)
	}
	out, err := f.Apply([]byte("<p>\n\n   Hello   </p>"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(out, []byte("   ")) {
		t.Errorf("whitespace not collapsed: %q", out)
	}
}

func TestMarkdown(t *testing.T) {
	f, err := Make("markdown", nil)
	if err != nil {
		t.Fatal(err)
	}
	out, err := f.Apply([]byte("# Hello\n\nworld\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte(">Hello</h1>")) || !bytes.Contains(out, []byte("<p>world</p>")) {
		t.Errorf("unexpected markdown output %q", out)
	}
}

func TestExec(t *testing.T) {
	if _, err := Make("exec", nil); err == nil {
		t.Errorf("expected error for missing command")
	}
	if _, err := exec.LookPath("tr"); err != nil {
		t.Skip("tr not found")
	}
	f, err := Make("exec", Options{"command": "tr", "args": []interface{}{"a-z", "A-Z"}})
	if err != nil {
		t.Fatal(err)
	}
	out, err := f.Apply([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "HELLO" {
		t.Errorf("expected %q, got %q", "HELLO", out)
	}
	if !strings.HasPrefix(f.Name(), "exec tr") {
		t.Errorf("unexpected name %q", f.Name())
	}
}

func TestOptions(t *testing.T) {
	o := Options{
		"b":    true,
		"i":    3,
		"f":    4.0,
		"s":    "x",
		"list": []interface{}{"a", "b"},
		"bad":  []interface{}{1},
	}
	if v, err := o.Bool("b", false); err != nil || !v {
		t.Errorf("Bool: got %v, %v", v, err)
	}
	if v, err := o.Bool("missing", true); err != nil || !v {
		t.Errorf("Bool default: got %v, %v", v, err)
	}
	if _, err := o.Bool("s", false); err == nil {
		t.Errorf("Bool: expected type error")
	}
	if v, err := o.Int("i", 0); err != nil || v != 3 {
		t.Errorf("Int: got %v, %v", v, err)
	}
	if v, err := o.Int("f", 0); err != nil || v != 4 {
		t.Errorf("Int from float: got %v, %v", v, err)
	}
	if v, err := o.String("s", ""); err != nil || v != "x" {
		t.Errorf("String: got %v, %v", v, err)
	}
	if v, err := o.Strings("list"); err != nil || len(v) != 2 || v[1] != "b" {
		t.Errorf("Strings: got %v, %v", v, err)
	}
	if v, err := o.Strings("s"); err != nil || len(v) != 1 {
		t.Errorf("Strings from string: got %v, %v", v, err)
	}
	if _, err := o.Strings("bad"); err == nil {
		t.Errorf("Strings: expected type error")
	}
}
