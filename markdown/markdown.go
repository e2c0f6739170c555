package markdown

import (
	"bytes"
	"slices"

	"github.com/kovetskiy/journey2html/attachment"
	crenderer "github.com/kovetskiy/journey2html/renderer"
	"github.com/kovetskiy/journey2html/stdlib"
	"github.com/kovetskiy/journey2html/types"
	"github.com/reconquest/pkg/log"

	"github.com/alecthomas/chroma/v2/styles"
	adm "github.com/stefanfritsch/goldmark-admonitions"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ExportExtension wires the journal-specific renderers into goldmark.
type ExportExtension struct {
	html.Config
	Stdlib       *stdlib.Lib
	Base         string
	ExportConfig types.ExportConfig
	Deduper      *attachment.Deduper
}

func NewExportExtension(
	stdlib *stdlib.Lib,
	base string,
	cfg types.ExportConfig,
	deduper *attachment.Deduper,
) *ExportExtension {
	return &ExportExtension{
		Config:       html.NewConfig(),
		Stdlib:       stdlib,
		Base:         base,
		ExportConfig: cfg,
		Deduper:      deduper,
	}
}

func (e *ExportExtension) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(crenderer.NewImageRenderer(e.Stdlib, e.Deduper, e.Base, e.ExportConfig), 100),
	))
}

// CompileMarkdown renders one entry's text to an HTML fragment. Photos
// referenced inline go through the shared deduper, so their links
// collapse with the photos listed in the entry records.
func CompileMarkdown(
	markdown []byte,
	lib *stdlib.Lib,
	base string,
	cfg types.ExportConfig,
	deduper *attachment.Deduper,
) string {
	log.Tracef(nil, "rendering markdown:\n%s", string(markdown))

	exportExtension := NewExportExtension(lib, base, cfg, deduper)

	extensions := []goldmark.Extender{
		extension.Footnote,
		extension.DefinitionList,
		extension.NewTable(
			extension.WithTableCellAlignMethod(extension.TableCellAlignStyle),
		),
		exportExtension,
		extension.GFM,
	}

	if slices.Contains(cfg.Features, "highlight") {
		style := cfg.HighlightStyle
		if styles.Get(style) == styles.Fallback && style != styles.Fallback.Name {
			log.Warningf(nil, "unknown chroma style %q, using fallback", style)
		}

		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(style),
		))
	}

	if slices.Contains(cfg.Features, "admonitions") {
		extensions = append(extensions, &adm.Extender{})
	}

	converter := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			html.WithXHTML(),
		))

	var buf bytes.Buffer
	err := converter.Convert(markdown, &buf)

	if err != nil {
		panic(err)
	}

	html := buf.Bytes()

	log.Tracef(nil, "rendered markdown to html:\n%s", string(html))

	return string(html)
}
