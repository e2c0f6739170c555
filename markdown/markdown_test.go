package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kovetskiy/journey2html/attachment"
	"github.com/kovetskiy/journey2html/stdlib"
	"github.com/kovetskiy/journey2html/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, text string, base string, cfg types.ExportConfig) string {
	t.Helper()

	lib, err := stdlib.New()
	require.NoError(t, err)

	return CompileMarkdown(
		[]byte(text),
		lib,
		base,
		cfg,
		attachment.NewDeduper(cfg.InlineImages),
	)
}

func TestCompileMarkdown(t *testing.T) {
	tests := map[string]struct {
		input        string
		wantContains []string
	}{
		"emphasis": {
			input:        "some **bold** text",
			wantContains: []string{"<strong>bold</strong>"},
		},
		"heading gets anchor": {
			input:        "# Hello",
			wantContains: []string{`id="hello"`},
		},
		"gfm strikethrough": {
			input:        "~~gone~~",
			wantContains: []string{"<del>gone</del>"},
		},
		"fenced code": {
			input:        "```\nplain\n```",
			wantContains: []string{"<pre"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			html := compile(t, tt.input, t.TempDir(), types.ExportConfig{})
			for _, want := range tt.wantContains {
				assert.Contains(t, html, want)
			}
		})
	}
}

func TestCompileMarkdownHighlighting(t *testing.T) {
	cfg := types.ExportConfig{
		Features:       []string{"highlight"},
		HighlightStyle: "monokai",
	}

	html := compile(t, "```go\nfunc main() {}\n```", t.TempDir(), cfg)

	assert.Contains(t, html, "<pre")
	assert.Contains(t, html, "func")
}

func TestCompileMarkdownRemoteImage(t *testing.T) {
	cfg := types.ExportConfig{ImageWidth: 600}

	html := compile(
		t,
		"![alt](https://example.com/a.png)",
		t.TempDir(),
		cfg,
	)

	assert.Contains(t, html, `src="https://example.com/a.png"`)
	assert.Contains(t, html, `width="600"`)
}

func TestCompileMarkdownLocalImage(t *testing.T) {
	base := t.TempDir()
	err := os.WriteFile(filepath.Join(base, "pic.jpg"), []byte("jpeg"), 0o644)
	require.NoError(t, err)

	html := compile(t, "![pic](pic.jpg)", base, types.ExportConfig{})

	assert.Contains(t, html, `src="pic.jpg"`)
}

func TestCompileMarkdownInlineLocalImage(t *testing.T) {
	base := t.TempDir()
	err := os.WriteFile(filepath.Join(base, "pic.jpg"), []byte("jpeg"), 0o644)
	require.NoError(t, err)

	cfg := types.ExportConfig{InlineImages: true}

	html := compile(t, "![pic](pic.jpg)", base, cfg)

	assert.Contains(t, html, `src="data:`)
}

func TestCompileMarkdownDeduplicatesInlinePhotos(t *testing.T) {
	base := t.TempDir()
	for _, name := range []string{"pic.jpg", "copy.jpg"} {
		err := os.WriteFile(filepath.Join(base, name), []byte("jpeg"), 0o644)
		require.NoError(t, err)
	}

	lib, err := stdlib.New()
	require.NoError(t, err)

	deduper := attachment.NewDeduper(false)

	html := CompileMarkdown(
		[]byte("![a](pic.jpg)\n\n![b](copy.jpg)"),
		lib,
		base,
		types.ExportConfig{},
		deduper,
	)

	// The second file has identical content, its link collapses onto
	// the first one.
	assert.Equal(t, 2, strings.Count(html, `src="pic.jpg"`))
	assert.NotContains(t, html, `src="copy.jpg"`)
}

func TestCompileMarkdownAdmonitions(t *testing.T) {
	input := "!!!note\n    watch out\n"

	plain := compile(t, input, t.TempDir(), types.ExportConfig{})
	assert.Contains(t, plain, "!!!note")

	cfg := types.ExportConfig{Features: []string{"admonitions"}}
	enabled := compile(t, input, t.TempDir(), cfg)
	assert.NotContains(t, enabled, "!!!note")
	assert.True(t, strings.Contains(enabled, "watch out"))
}
