package page

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kovetskiy/journey2html/backup"
	"github.com/kovetskiy/journey2html/stdlib"
	"github.com/kovetskiy/journey2html/types"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

// Image is the data for the html:image template.
type Image struct {
	Src   string
	Width string
	Alt   string
}

// Entry is the data for the html:entry template, one rendered journal
// entry. Title is empty unless the entry was curated with a front matter
// override; Location and MapURL are empty for entries without a fix.
type Entry struct {
	Anchor   string
	Title    string
	Date     string
	Address  string
	Location string
	MapURL   string
	Weather  backup.Weather
	Tags     []string
	Photos   []Image
	Body     string
}

type navItem struct {
	Anchor string
	Label  string
}

// Compose renders the entries and wraps them into the document shell.
func Compose(lib *stdlib.Lib, cfg types.ExportConfig, entries []Entry) (string, error) {
	var body bytes.Buffer

	for _, entry := range entries {
		err := lib.Templates.ExecuteTemplate(&body, "html:entry", entry)
		if err != nil {
			return "", karma.Describe("anchor", entry.Anchor).Format(
				err,
				"unable to execute entry template",
			)
		}
	}

	footer, _ := lib.Vars["footer"].(string)

	var buffer bytes.Buffer

	err := lib.Templates.ExecuteTemplate(
		&buffer,
		"html:page",
		struct {
			Title      string
			Stylesheet string
			Body       string
			Footer     string
		}{
			Title:      cfg.Title,
			Stylesheet: cfg.Stylesheet,
			Body:       body.String(),
			Footer:     footer,
		},
	)
	if err != nil {
		return "", karma.Format(err, "unable to execute page template")
	}

	return buffer.String(), nil
}

// PostProcess reworks the assembled document tree: every image gets the
// configured width and lazy loading, and a date index pointing at the
// entry anchors is prepended to the journal body.
func PostProcess(document string, lib *stdlib.Lib, cfg types.ExportConfig) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return "", karma.Format(err, "unable to parse assembled document")
	}

	doc.Find("main img").Each(func(_ int, img *goquery.Selection) {
		if _, ok := img.Attr("width"); !ok && cfg.ImageWidth > 0 {
			img.SetAttr("width", strconv.Itoa(cfg.ImageWidth))
		}

		img.SetAttr("loading", "lazy")
	})

	items := []navItem{}
	doc.Find("article.entry").Each(func(_ int, article *goquery.Selection) {
		anchor, ok := article.Attr("id")
		if !ok {
			return
		}

		items = append(items, navItem{
			Anchor: anchor,
			Label:  article.Find("h1").First().Text(),
		})
	})

	// An index for a single entry is just noise.
	if len(items) > 1 {
		var nav bytes.Buffer

		err := lib.Templates.ExecuteTemplate(&nav, "html:nav", items)
		if err != nil {
			return "", karma.Format(err, "unable to execute nav template")
		}

		doc.Find("main").PrependHtml(nav.String())
	}

	result, err := doc.Html()
	if err != nil {
		return "", karma.Format(err, "unable to serialize document")
	}

	return result, nil
}

// Write stores the document as index.html inside the expanded backup
// directory.
func Write(path string, document string) error {
	err := os.WriteFile(path, []byte(document), 0o644)
	if err != nil {
		return karma.Format(err, "unable to write %q", path)
	}

	log.Infof(nil, "journal page written: %s", path)

	return nil
}
