package backup

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kovetskiy/journey2html/vfs"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

const (
	// Journey stores math.MaxFloat64 for entries without a location fix.
	unsetCoordinate = math.MaxFloat64

	TypeMarkdown = "markdown"
	TypeHTML     = "html"
)

type Weather struct {
	ID          int     `json:"id"`
	DegreeC     float64 `json:"degree_c"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Place       string  `json:"place"`
}

type Entry struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	Title           string   `json:"-"`
	PreviewText     string   `json:"preview_text"`
	DateJournal     int64    `json:"date_journal"`
	DateModified    int64    `json:"date_modified"`
	Timezone        string   `json:"timezone"`
	Address         string   `json:"address"`
	Lat             float64  `json:"lat"`
	Lon             float64  `json:"lon"`
	MusicTitle      string   `json:"music_title"`
	MusicArtistName string   `json:"music_artist_name"`
	Favourite       bool     `json:"favourite"`
	Label           string   `json:"label"`
	Tags            []string `json:"tags"`
	Photos          []string `json:"photos"`
	Weather         Weather  `json:"weather"`
	Type            string   `json:"type"`
}

// LoadEntry reads and decodes a single entry record. The entry ID falls
// back to the file name stem, which is what Journey uses for the record
// file name anyway.
func LoadEntry(opener vfs.Opener, path string) (*Entry, error) {
	facts := karma.Describe("path", path)

	file, err := opener.Open(path)
	if err != nil {
		return nil, facts.Format(err, "unable to open journal entry")
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, facts.Format(err, "unable to read journal entry")
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, facts.Format(err, "unable to decode journal entry")
	}

	entry.Text = string(bytes.ReplaceAll(
		[]byte(entry.Text),
		[]byte("\r\n"),
		[]byte("\n"),
	))

	if entry.ID == "" {
		base := filepath.Base(path)
		entry.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if entry.Type == "" {
		entry.Type = TypeMarkdown
	}

	return &entry, nil
}

// Date converts the POSIX millisecond timestamp into the entry's own
// timezone. Unknown zones degrade to the local one.
func (entry *Entry) Date() time.Time {
	date := time.UnixMilli(entry.DateJournal)

	if entry.Timezone == "" {
		return date
	}

	location, err := time.LoadLocation(entry.Timezone)
	if err != nil {
		log.Warningf(
			nil,
			"entry %q has unknown timezone %q, using local time",
			entry.ID,
			entry.Timezone,
		)

		return date
	}

	return date.In(location)
}

func (entry *Entry) HasLocation() bool {
	return entry.Lat != unsetCoordinate && entry.Lon != unsetCoordinate &&
		!(entry.Lat == 0 && entry.Lon == 0)
}

func (entry *Entry) IsHTML() bool {
	return entry.Type == TypeHTML
}

// SortEntries orders entries by journal date, oldest first unless order
// is "desc".
func SortEntries(entries []*Entry, order string) {
	sort.SliceStable(entries, func(i, j int) bool {
		if order == "desc" {
			return entries[i].DateJournal > entries[j].DateJournal
		}
		return entries[i].DateJournal < entries[j].DateJournal
	})
}
