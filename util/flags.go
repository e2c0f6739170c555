package util

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	altsrctoml "github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var filename string

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:      "file",
		Aliases:   []string{"f"},
		Value:     "",
		Usage:     "path to the Journey ZIP backup to render.",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_FILE"), altsrctoml.TOML("file", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:      "output",
		Aliases:   []string{"o"},
		Value:     "",
		Usage:     "directory to expand the backup into. Defaults to the archive name without extension.",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_OUTPUT"), altsrctoml.TOML("output", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "force",
		Value:   false,
		Usage:   "expand the backup even if the output directory already exists.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_FORCE"), altsrctoml.TOML("force", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "compile-only",
		Value:   false,
		Usage:   "print the resulting HTML to stdout and don't write index.html.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_COMPILE_ONLY"), altsrctoml.TOML("compile-only", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "continue-on-error",
		Value:   false,
		Usage:   "don't exit if an entry fails to load, continue processing remaining entries.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_CONTINUE_ON_ERROR"), altsrctoml.TOML("continue-on-error", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "title",
		Value:   "Journal",
		Usage:   "title of the generated page.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_TITLE"), altsrctoml.TOML("title", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "css",
		Value:   "https://unpkg.com/sakura.css/css/sakura-dark.css",
		Usage:   "stylesheet URL to link from the generated page.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_CSS"), altsrctoml.TOML("css", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.IntFlag{
		Name:    "image-width",
		Value:   600,
		Usage:   "display width for embedded photos, 0 leaves images unsized.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_IMAGE_WIDTH"), altsrctoml.TOML("image-width", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "date-format",
		Value:   "January 02, 2006 15:04",
		Usage:   "Go reference-time layout used for entry headings.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_DATE_FORMAT"), altsrctoml.TOML("date-format", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "sort",
		Value:   "asc",
		Usage:   "order of entries on the page by journal date. Possible values: asc, desc.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_SORT"), altsrctoml.TOML("sort", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.BoolFlag{
		Name:    "inline-images",
		Value:   false,
		Usage:   "embed photos as base64 data URIs so the page is self-contained.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_INLINE_IMAGES"), altsrctoml.TOML("inline-images", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:      "include-path",
		Value:     "",
		Usage:     "directory with *.tpl template overrides and an optional vars.yaml.",
		TakesFile: true,
		Sources:   cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_INCLUDE_PATH"), altsrctoml.TOML("include-path", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "highlight-style",
		Value:   "monokai",
		Usage:   "chroma style used for fenced code blocks.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_HIGHLIGHT_STYLE"), altsrctoml.TOML("highlight-style", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringSliceFlag{
		Name:    "features",
		Value:   []string{"highlight"},
		Usage:   "enables optional features. Current features: highlight, admonitions",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_FEATURES"), altsrctoml.TOML("features", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "color",
		Value:   "auto",
		Usage:   "display logs in color. Possible values: auto, never.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_COLOR"), altsrctoml.TOML("color", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "set the log level. Possible values: TRACE, DEBUG, INFO, WARNING, ERROR, FATAL.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_LOG_LEVEL"), altsrctoml.TOML("log-level", altsrc.NewStringPtrSourcer(&filename))),
	},
	&cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Value:       ConfigFilePath(),
		Usage:       "use the specified configuration file.",
		TakesFile:   true,
		Sources:     cli.NewValueSourceChain(cli.EnvVar("JOURNEY2HTML_CONFIG")),
		Destination: &filename,
	},
}
