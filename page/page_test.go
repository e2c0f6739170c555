package page

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kovetskiy/journey2html/backup"
	"github.com/kovetskiy/journey2html/stdlib"
	"github.com/kovetskiy/journey2html/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLib(t *testing.T) *stdlib.Lib {
	t.Helper()

	lib, err := stdlib.New()
	require.NoError(t, err)

	return lib
}

func testConfig() types.ExportConfig {
	return types.ExportConfig{
		Title:      "My Journal",
		Stylesheet: "https://example.com/style.css",
		ImageWidth: 600,
	}
}

func testEntry(anchor string, date string) Entry {
	return Entry{
		Anchor:  anchor,
		Date:    date,
		Address: "Berlin, Germany",
		Weather: backup.Weather{DegreeC: 12.5, Description: "Clouds"},
		Tags:    []string{"travel"},
		Photos:  []Image{{Src: "a.jpg", Width: "600", Alt: "a.jpg"}},
		Body:    "<p>hello</p>\n",
	}
}

func TestCompose(t *testing.T) {
	document, err := Compose(newLib(t), testConfig(), []Entry{
		testEntry("entry-1", "October 26, 2017 14:46"),
	})
	require.NoError(t, err)

	assert.Contains(t, document, "<!DOCTYPE html>")
	assert.Contains(t, document, "<title>My Journal</title>")
	assert.Contains(t, document, `href="https://example.com/style.css"`)
	assert.Contains(t, document, `<article class="entry" id="entry-1">`)
	assert.Contains(t, document, "<h1>October 26, 2017 14:46</h1>")
	assert.Contains(t, document, "<h5>Berlin, Germany</h5>")
	assert.Contains(t, document, "12.5&deg;C, Clouds")
	assert.Contains(t, document, `<img src="a.jpg" width="600" alt="a.jpg"/>`)
	assert.Contains(t, document, "<p>hello</p>")
	assert.Contains(t, document, "<code>#travel</code>")
}

func TestComposeCuratedTitle(t *testing.T) {
	entry := testEntry("entry-1", "October 26, 2017 14:46")
	entry.Title = "Curated Heading"

	document, err := Compose(newLib(t), testConfig(), []Entry{entry})
	require.NoError(t, err)

	// The curated title takes over the heading, the date moves below it.
	assert.Contains(t, document, "<h1>Curated Heading</h1>")
	assert.Contains(t, document, `<h5 class="date">October 26, 2017 14:46</h5>`)
	assert.NotContains(t, document, "<h1>October 26, 2017 14:46</h1>")
}

func TestComposeLinksAddressToMap(t *testing.T) {
	entry := testEntry("entry-1", "October 26, 2017 14:46")
	entry.MapURL = "https://www.openstreetmap.org/?mlat=52.52&mlon=13.405"

	document, err := Compose(newLib(t), testConfig(), []Entry{entry})
	require.NoError(t, err)

	assert.Contains(
		t,
		document,
		`<a href="https://www.openstreetmap.org/?mlat=52.52&amp;mlon=13.405">Berlin, Germany</a>`,
	)
}

func TestComposeLocationWithoutAddress(t *testing.T) {
	entry := testEntry("entry-1", "October 26, 2017 14:46")
	entry.Address = ""
	entry.Location = "52.52, 13.405"
	entry.MapURL = "https://www.openstreetmap.org/?mlat=52.52&mlon=13.405"

	document, err := Compose(newLib(t), testConfig(), []Entry{entry})
	require.NoError(t, err)

	assert.Contains(t, document, ">52.52, 13.405</a>")
}

func TestComposeFooterFromVars(t *testing.T) {
	lib := newLib(t)
	lib.Vars["footer"] = "made with journey2html"

	document, err := Compose(lib, testConfig(), nil)
	require.NoError(t, err)

	assert.Contains(t, document, "<footer>made with journey2html</footer>")
}

func TestPostProcessAddsNav(t *testing.T) {
	lib := newLib(t)

	document, err := Compose(lib, testConfig(), []Entry{
		testEntry("entry-1", "October 26, 2017"),
		testEntry("entry-2", "October 27, 2017"),
	})
	require.NoError(t, err)

	document, err = PostProcess(document, lib, testConfig())
	require.NoError(t, err)

	assert.Contains(t, document, `<nav class="index">`)
	assert.Contains(t, document, `href="#entry-1"`)
	assert.Contains(t, document, `href="#entry-2"`)

	// The index comes before the first entry.
	assert.Less(
		t,
		strings.Index(document, "<nav"),
		strings.Index(document, "<article"),
	)
}

func TestPostProcessSingleEntrySkipsNav(t *testing.T) {
	lib := newLib(t)

	document, err := Compose(lib, testConfig(), []Entry{
		testEntry("entry-1", "October 26, 2017"),
	})
	require.NoError(t, err)

	document, err = PostProcess(document, lib, testConfig())
	require.NoError(t, err)

	assert.NotContains(t, document, "<nav")
}

func TestPostProcessSizesImages(t *testing.T) {
	lib := newLib(t)

	entry := testEntry("entry-1", "October 26, 2017")
	entry.Body = `<p><img src="inline.jpg"/></p>`

	document, err := Compose(lib, testConfig(), []Entry{entry})
	require.NoError(t, err)

	document, err = PostProcess(document, lib, testConfig())
	require.NoError(t, err)

	assert.Contains(t, document, `src="inline.jpg"`)
	assert.Contains(t, document, `loading="lazy"`)

	// The unsized inline image picked up the configured width.
	for _, line := range strings.Split(document, "\n") {
		if strings.Contains(line, "inline.jpg") {
			assert.Contains(t, line, `width="600"`)
		}
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	err := Write(path, "<html></html>")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}
