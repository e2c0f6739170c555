package renderer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/kovetskiy/journey2html/attachment"
	"github.com/kovetskiy/journey2html/stdlib"
	"github.com/kovetskiy/journey2html/types"
	"github.com/kovetskiy/journey2html/vfs"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type ImageRenderer struct {
	html.Config
	Stdlib  *stdlib.Lib
	Base    string
	Deduper *attachment.Deduper
	Width   int
}

// NewImageRenderer creates a new instance of the ImageRenderer
func NewImageRenderer(
	stdlib *stdlib.Lib,
	deduper *attachment.Deduper,
	base string,
	cfg types.ExportConfig,
	opts ...html.Option,
) renderer.NodeRenderer {
	return &ImageRenderer{
		Config:  html.NewConfig(),
		Stdlib:  stdlib,
		Base:    base,
		Deduper: deduper,
		Width:   cfg.ImageWidth,
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *ImageRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindImage, r.renderImage)
}

// renderImage renders an inline image either as a reference to a photo
// shipped with the backup or as a plain remote URL. Backup photos take
// their link from the shared deduper so identical files collapse onto
// one reference no matter where in the export they appear.
func (r *ImageRenderer) renderImage(writer util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)

	destination := string(n.Destination)

	var photos []attachment.Photo
	var err error

	if !strings.Contains(destination, "://") {
		photos, err = attachment.ResolvePhotos(
			vfs.LocalOS,
			r.Base,
			[]string{destination},
		)
	}

	var src string

	if err != nil || len(photos) == 0 {
		// Not a file from the backup, treat as URL.
		src = strings.ReplaceAll(destination, "&", "&amp;")
	} else {
		src = r.Deduper.Link(photos[0])
	}

	width := ""
	if r.Width > 0 {
		width = strconv.Itoa(r.Width)
	}

	err = r.Stdlib.Templates.ExecuteTemplate(
		writer,
		"html:image",
		struct {
			Src   string
			Width string
			Alt   string
		}{
			src,
			width,
			string(nodeToHTMLText(n, source)),
		},
	)
	if err != nil {
		return ast.WalkStop, err
	}

	return ast.WalkSkipChildren, nil
}

// https://github.com/yuin/goldmark/blob/c446c414ef3a41fb562da0ae5badd18f1502c42f/renderer/html/html.go
func nodeToHTMLText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s, ok := c.(*ast.String); ok && s.IsCode() {
			buf.Write(s.Value)
		} else if t, ok := c.(*ast.Text); ok {
			buf.Write(util.EscapeHTML(t.Value(source)))
		} else {
			buf.Write(nodeToHTMLText(c, source))
		}
	}
	return buf.Bytes()
}
