package util

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kovetskiy/journey2html/attachment"
	"github.com/kovetskiy/journey2html/backup"
	"github.com/kovetskiy/journey2html/includes"
	"github.com/kovetskiy/journey2html/markdown"
	"github.com/kovetskiy/journey2html/page"
	"github.com/kovetskiy/journey2html/stdlib"
	"github.com/kovetskiy/journey2html/types"
	"github.com/kovetskiy/journey2html/vfs"
	"github.com/kovetskiy/lorg"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
)

func RunExport(ctx context.Context, cmd *cli.Command) error {
	if err := SetLogLevel(cmd); err != nil {
		return err
	}

	if cmd.String("color") == "never" {
		log.GetLogger().SetFormat(
			lorg.NewFormat(
				`${time:2006-01-02 15:04:05.000} ${level:%s:left:true} ${prefix}%s`,
			),
		)
		log.GetLogger().SetOutput(os.Stderr)
	}

	archive := cmd.String("file")
	if archive == "" {
		return fmt.Errorf("no backup archive specified, use --file")
	}

	sortOrder := cmd.String("sort")
	if err := ValidateSortOrder(sortOrder); err != nil {
		return err
	}

	dir := cmd.String("output")
	if dir == "" {
		dir = backup.OutputDir(archive)
	}

	log.Debug("config:")
	for _, f := range cmd.Flags {
		flag := f.Names()
		log.Debugf(nil, "%20s: %v", flag[0], cmd.Value(flag[0]))
	}

	err := backup.ExpandArchive(archive, dir, cmd.Bool("force"))
	if err != nil {
		return err
	}

	files, err := backup.DiscoverEntries(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warning("no journal entries found in backup")
	}

	lib, err := stdlib.New()
	if err != nil {
		return err
	}

	lib.Templates, lib.Vars, err = includes.LoadOverrides(
		cmd.String("include-path"),
		lib.Templates,
	)
	if err != nil {
		return karma.Format(err, "unable to load template overrides")
	}

	cfg := types.ExportConfig{
		Title:          cmd.String("title"),
		Stylesheet:     cmd.String("css"),
		ImageWidth:     int(cmd.Int("image-width")),
		DateFormat:     cmd.String("date-format"),
		SortOrder:      sortOrder,
		InlineImages:   cmd.Bool("inline-images"),
		HighlightStyle: cmd.String("highlight-style"),
		Features:       cmd.StringSlice("features"),
	}

	fatalErrorHandler := NewErrorHandler(cmd.Bool("continue-on-error"))

	entries := []*backup.Entry{}

	// Loop through entry records discovered in the expanded backup
	for _, file := range files {
		entry := loadEntry(file, fatalErrorHandler)
		if entry != nil {
			entries = append(entries, entry)
		}
	}

	backup.SortEntries(entries, cfg.SortOrder)

	deduper := attachment.NewDeduper(cfg.InlineImages)

	rendered := []page.Entry{}
	for _, entry := range entries {
		log.Infof(nil, "processing entry %s", entry.ID)

		compiled, ok := renderEntry(entry, dir, lib, cfg, deduper, fatalErrorHandler)
		if ok {
			rendered = append(rendered, compiled)
		}
	}

	document, err := page.Compose(lib, cfg, rendered)
	if err != nil {
		return err
	}

	document, err = page.PostProcess(document, lib, cfg)
	if err != nil {
		return err
	}

	if cmd.Bool("compile-only") {
		fmt.Println(document)
		return nil
	}

	return page.Write(filepath.Join(dir, "index.html"), document)
}

func loadEntry(file string, fatalErrorHandler *FatalErrorHandler) *backup.Entry {
	entry, err := backup.LoadEntry(vfs.LocalOS, file)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to load entry %q", file)
		return nil
	}

	overrides, text, err := backup.ExtractOverrides([]byte(entry.Text))
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to parse front matter in %q", file)
		return nil
	}

	if overrides.Skip {
		log.Infof(nil, "skipping entry %q", entry.ID)
		return nil
	}

	overrides.Apply(entry)
	entry.Text = string(text)

	return entry
}

func renderEntry(
	entry *backup.Entry,
	dir string,
	lib *stdlib.Lib,
	cfg types.ExportConfig,
	deduper *attachment.Deduper,
	fatalErrorHandler *FatalErrorHandler,
) (page.Entry, bool) {
	var body string

	if entry.IsHTML() {
		body = entry.Text
	} else {
		body = markdown.CompileMarkdown([]byte(entry.Text), lib, dir, cfg, deduper)
	}

	photos, err := attachment.ResolvePhotos(vfs.LocalOS, dir, entry.Photos)
	if err != nil {
		fatalErrorHandler.Handle(err, "unable to resolve photos for entry %q", entry.ID)
		return page.Entry{}, false
	}

	width := ""
	if cfg.ImageWidth > 0 {
		width = strconv.Itoa(cfg.ImageWidth)
	}

	images := []page.Image{}
	for _, photo := range photos {
		images = append(images, page.Image{
			Src:   deduper.Link(photo),
			Width: width,
			Alt:   filepath.Base(photo.Name),
		})
	}

	location := ""
	mapURL := ""
	if entry.HasLocation() {
		lat := strconv.FormatFloat(entry.Lat, 'f', -1, 64)
		lon := strconv.FormatFloat(entry.Lon, 'f', -1, 64)

		location = lat + ", " + lon
		mapURL = "https://www.openstreetmap.org/?mlat=" + lat + "&mlon=" + lon
	}

	return page.Entry{
		Anchor:   "entry-" + entry.ID,
		Title:    entry.Title,
		Date:     entry.Date().Format(cfg.DateFormat),
		Address:  entry.Address,
		Location: location,
		MapURL:   mapURL,
		Weather:  entry.Weather,
		Tags:     entry.Tags,
		Photos:   images,
		Body:     body,
	}, true
}

func ValidateSortOrder(order string) error {
	if order != "asc" && order != "desc" {
		return fmt.Errorf("unknown sort order: %s", order)
	}
	return nil
}

func ConfigFilePath() string {
	fp, err := os.UserConfigDir()
	if err != nil {
		log.Fatal(err)
	}
	return filepath.Join(fp, "journey2html.toml")
}

func SetLogLevel(cmd *cli.Command) error {
	logLevel := cmd.String("log-level")
	switch strings.ToUpper(logLevel) {
	case lorg.LevelTrace.String():
		log.SetLevel(lorg.LevelTrace)
	case lorg.LevelDebug.String():
		log.SetLevel(lorg.LevelDebug)
	case lorg.LevelInfo.String():
		log.SetLevel(lorg.LevelInfo)
	case lorg.LevelWarning.String():
		log.SetLevel(lorg.LevelWarning)
	case lorg.LevelError.String():
		log.SetLevel(lorg.LevelError)
	case lorg.LevelFatal.String():
		log.SetLevel(lorg.LevelFatal)
	default:
		return fmt.Errorf("unknown log level: %s", logLevel)
	}

	return nil
}
