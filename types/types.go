package types

type ExportConfig struct {
	Title          string
	Stylesheet     string
	ImageWidth     int
	DateFormat     string
	SortOrder      string
	InlineImages   bool
	HighlightStyle string
	Features       []string
}
