// Package markdown converts Markdown post bodies to HTML.
//
// The rest of folio only sees the Converter interface, so the engine
// can be switched in the configuration without touching anything
// else.
package markdown

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/russross/blackfriday/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// A Converter turns Markdown source into an HTML fragment.
type Converter interface {
	Convert(src []byte) (string, error)
}

// engines maps configuration names to Converter constructors.
var engines = map[string]func() Converter{
	"blackfriday": func() Converter { return Blackfriday{} },
	"goldmark":    func() Converter { return NewGoldmark() },
}

// New returns the Converter registered under engine. An empty engine
// selects Blackfriday.
func New(engine string) (Converter, error) {
	if engine == "" {
		engine = "blackfriday"
	}

	f, ok := engines[strings.ToLower(engine)]
	if !ok {
		return nil, fmt.Errorf("unknown markdown engine %q (available: %v)", engine, Engines())
	}
	return f(), nil
}

// Engines lists the names accepted by New.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var bufPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func getBuffer() *bytes.Buffer {
	return bufPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufPool.Put(buf)
}

// Blackfriday converts using Blackfriday's common extensions.
type Blackfriday struct{}

func (Blackfriday) Convert(src []byte) (string, error) {
	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	node := md.Parse(src)

	buf := getBuffer()
	defer putBuffer(buf)

	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags,
	})
	err := Render(buf, node, renderer)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return buf.String(), nil
}

// Goldmark converts using goldmark with GitHub Flavored Markdown
// enabled.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark returns a Goldmark converter with the GFM extension.
func NewGoldmark() *Goldmark {
	return &Goldmark{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (g *Goldmark) Convert(src []byte) (string, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	err := g.md.Convert(src, buf)
	if err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	return buf.String(), nil
}

// An errWriter is a writer that writes until a single error has been
// returned by the underlying writer, at which point it simply returns
// that error.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(data []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}

	n, err := w.w.Write(data)
	w.err = err
	return n, err
}

// Render renders a parsed Blackfriday tree to w, returning the first
// write error. blackfriday.Run does the same walk but only to an
// in-memory buffer and without reporting errors.
func Render(w io.Writer, node *blackfriday.Node, renderer blackfriday.Renderer) error {
	ew := errWriter{w: w}

	renderer.RenderHeader(&ew, node)
	node.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		return renderer.RenderNode(&ew, node, entering)
	})
	renderer.RenderFooter(&ew, node)

	return ew.err
}
