package webfilters

import (
	"errors"
	"testing"

	"github.com/dchest/webfilters/filters"
	"github.com/dchest/webfilters/pipeline"
)

// countingCompressor wraps content in brackets and counts calls.
type countingCompressor struct {
	calls   int
	options filters.Options
	err     error
}

func (c *countingCompressor) Name() string { return "counting" }

func (c *countingCompressor) Apply(in []byte) ([]byte, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return []byte("[" + string(in) + "]"), nil
}

func withCompressor(f *CSSMinifyFilter, c *countingCompressor) *CSSMinifyFilter {
	f.makeCompressor = func(o filters.Options) (filters.Filter, error) {
		c.options = o
		return c, nil
	}
	return f
}

type brokenInput struct{ err error }

func (b brokenInput) Path() string { return "broken.css" }
func (b brokenInput) Read() ([]byte, error) { return nil, b.err }

type brokenOutput struct{ err error }

func (b brokenOutput) Path() string { return "out.min.css" }
func (b brokenOutput) Write(data []byte) error { return b.err }

func mem(path, content string) pipeline.InputFile {
	return pipeline.NewMemoryFile(path, []byte(content))
}

func TestMinifiedCSSName(t *testing.T) {
	var tests = []struct{ in, out string }{
		{"app.css", "app.min.css"},
		{"app.min.css", "app.min.css"},
		{"css/site.css", "css/site.min.css"},
		{"vendor.min.css.bak", "vendor.min.css.bak"},
		{"style.scss.css", "style.scss.min.css"},
		{"readme.txt", "readme.txt"},
		{"admin.css", "admin.css"},
	}
	f := NewCSSMinifyFilter(nil, nil)
	for i, v := range tests {
		out := f.OutputName(v.in)
		if v.out != out {
			t.Errorf("%d: expected %q, got %q", i, v.out, out)
		}
	}
}

func TestCustomOutputName(t *testing.T) {
	f := NewCSSMinifyFilter(nil, func(string) string { return "bundle.css" })
	if out := f.OutputName("a.css"); out != "bundle.css" {
		t.Errorf("expected %q, got %q", "bundle.css", out)
	}
}

func TestCSSMinifyPassesMinified(t *testing.T) {
	c := &countingCompressor{}
	f := withCompressor(NewCSSMinifyFilter(nil, nil), c)
	out := pipeline.NewMemoryFile("vendor.min.css.bak", nil)
	content := "  .a { color : red }  "
	if err := f.GenerateOutput([]pipeline.InputFile{mem("vendor.min.css.bak", content)}, out); err != nil {
		t.Fatal(err)
	}
	if string(out.Bytes()) != content {
		t.Errorf("expected %q, got %q", content, out.Bytes())
	}
	if c.calls != 0 {
		t.Errorf("compressor called %d times, expected 0", c.calls)
	}
}

func TestCSSMinifyOrder(t *testing.T) {
	c := &countingCompressor{}
	options := filters.Options{"precision": 3}
	f := withCompressor(NewCSSMinifyFilter(options, nil), c)
	out := pipeline.NewMemoryFile("all.css", nil)
	inputs := []pipeline.InputFile{
		mem("a.css", "A"),
		mem("b.min.css", "B"),
		mem("c.css", "C"),
	}
	if err := f.GenerateOutput(inputs, out); err != nil {
		t.Fatal(err)
	}
	if got := string(out.Bytes()); got != "[A]B[C]" {
		t.Errorf("expected %q, got %q", "[A]B[C]", got)
	}
	if c.calls != 2 {
		t.Errorf("compressor called %d times, expected 2", c.calls)
	}
	if c.options["precision"] != 3 {
		t.Errorf("options not passed to compressor: %v", c.options)
	}
}

func TestCSSMinifyErrors(t *testing.T) {
	errRead := errors.New("read failed")
	errCompress := errors.New("bad css")
	errWrite := errors.New("write failed")

	// Read failure propagates unchanged.
	f := withCompressor(NewCSSMinifyFilter(nil, nil), &countingCompressor{})
	err := f.GenerateOutput([]pipeline.InputFile{brokenInput{errRead}}, pipeline.NewMemoryFile("x", nil))
	if err != errRead {
		t.Errorf("expected %v, got %v", errRead, err)
	}

	// Compression failure propagates; earlier output stays written.
	f = withCompressor(NewCSSMinifyFilter(nil, nil), &countingCompressor{err: errCompress})
	out := pipeline.NewMemoryFile("x", nil)
	err = f.GenerateOutput([]pipeline.InputFile{mem("a.min.css", "A"), mem("b.css", "B")}, out)
	if err != errCompress {
		t.Errorf("expected %v, got %v", errCompress, err)
	}
	if string(out.Bytes()) != "A" {
		t.Errorf("expected partial output %q, got %q", "A", out.Bytes())
	}

	// Write failure propagates unchanged.
	f = withCompressor(NewCSSMinifyFilter(nil, nil), &countingCompressor{})
	err = f.GenerateOutput([]pipeline.InputFile{mem("a.css", "A")}, brokenOutput{errWrite})
	if err != errWrite {
		t.Errorf("expected %v, got %v", errWrite, err)
	}
}

func TestCSSMinifyDependencies(t *testing.T) {
	a := NewCSSMinifyFilter(nil, nil).ExternalDependencies()
	b := NewCSSMinifyFilter(filters.Options{"inline": true}, nil).ExternalDependencies()
	if len(a) != 1 || len(b) != 1 || a[0] != b[0] {
		t.Errorf("dependencies differ or aren't a single entry: %v, %v", a, b)
	}
	if !filters.Registered(a[0]) {
		t.Errorf("dependency %q is not registered", a[0])
	}
}

func TestCSSMinifyPipeline(t *testing.T) {
	compressor, err := filters.Make("css", nil)
	if err != nil {
		t.Fatal(err)
	}
	want, err := compressor.Apply([]byte(".x{color:red;}"))
	if err != nil {
		t.Fatal(err)
	}

	p := pipeline.New(filters.Registered).Add("css", "*.css", NewCSSMinifyFilter(nil, nil))
	out, err := p.Run([]pipeline.InputFile{
		mem("a.css", ".x{color:red;}"),
		mem("b.min.css", ".y{color:blue}"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(out))
	}
	var tests = []struct{ path, content string }{
		{"a.min.css", string(want)},
		{"b.min.css", ".y{color:blue}"},
	}
	for i, v := range tests {
		if out[i].Path() != v.path {
			t.Errorf("%d: expected path %q, got %q", i, v.path, out[i].Path())
		}
		b, _ := out[i].Read()
		if string(b) != v.content {
			t.Errorf("%d: expected %q, got %q", i, v.content, b)
		}
	}
	if string(want) != ".x{color:red}" {
		t.Errorf("unexpected compressed form %q", want)
	}
}
