package backup

import (
	"bytes"

	"github.com/adrg/frontmatter"
	"github.com/reconquest/karma-go"
)

// Overrides is the optional YAML front matter at the top of an entry's
// text. Journey never writes it, but it lets users curate an export by
// editing the extracted records.
type Overrides struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
	Skip  bool     `yaml:"skip"`
}

// ExtractOverrides splits front matter from the entry text. Text without
// front matter is returned unchanged.
func ExtractOverrides(text []byte) (*Overrides, []byte, error) {
	var matter Overrides

	rest, err := frontmatter.Parse(bytes.NewReader(text), &matter)
	if err != nil {
		return nil, text, karma.Format(
			err,
			"unable to parse entry front matter",
		)
	}

	return &matter, rest, nil
}

// Apply merges the overrides into the entry. The title has no Journey
// counterpart, it only exists as an override.
func (overrides *Overrides) Apply(entry *Entry) {
	if overrides.Title != "" {
		entry.Title = overrides.Title
	}

	if len(overrides.Tags) > 0 {
		entry.Tags = overrides.Tags
	}
}
