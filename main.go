package main

import (
	"context"
	"os"

	"github.com/kovetskiy/journey2html/util"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
)

const (
	version     = "1.0.0"
	usage       = "A tool for rendering Journey journal backups to a static HTML page."
	description = `journey2html expands a ZIP backup made by the Journey journaling app, ` +
		`converts every entry from markdown to HTML and writes a single index.html ` +
		`page with the entry photos embedded. ` +
		`Documentation is available here: https://github.com/kovetskiy/journey2html`
)

func main() {
	cmd := &cli.Command{
		Name:                  "journey2html",
		Usage:                 usage,
		Description:           description,
		Version:               version,
		Flags:                 util.Flags,
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Action:                util.RunExport,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
