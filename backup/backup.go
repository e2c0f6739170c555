package backup

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

// OutputDir derives the extraction directory from the archive name:
// journey-foo.zip becomes journey-foo.
func OutputDir(archive string) string {
	base := filepath.Base(archive)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ExpandArchive expands the ZIP backup into dir. The directory must not
// exist yet unless force is given, so a stale export is never silently
// mixed with a fresh one.
func ExpandArchive(archive string, dir string, force bool) error {
	facts := karma.Describe("archive", archive).Describe("dir", dir)

	if _, err := os.Stat(dir); err == nil && !force {
		return facts.Format(
			nil,
			"output directory already exists, use --force to overwrite",
		)
	}

	reader, err := zip.OpenReader(archive)
	if err != nil {
		return facts.Format(err, "unable to open backup archive")
	}
	defer func() {
		_ = reader.Close()
	}()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return facts.Format(err, "unable to create output directory")
	}

	for _, file := range reader.File {
		if err := expandFile(file, dir); err != nil {
			return facts.Describe("member", file.Name).Format(
				err,
				"unable to expand archive member",
			)
		}
	}

	return nil
}

func expandFile(file *zip.File, dir string) error {
	target := filepath.Join(dir, file.Name)

	// Reject members that would escape the output directory.
	if !strings.HasPrefix(target, filepath.Clean(dir)+string(os.PathSeparator)) {
		return karma.Describe("target", target).Format(
			nil,
			"archive member path escapes output directory",
		)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	source, err := file.Open()
	if err != nil {
		return err
	}
	defer func() {
		_ = source.Close()
	}()

	destination, err := os.OpenFile(
		target,
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		0o644,
	)
	if err != nil {
		return err
	}

	_, err = io.Copy(destination, source)
	if err != nil {
		_ = destination.Close()
		return err
	}

	return destination.Close()
}

// DiscoverEntries globs the entry records inside the expanded backup.
// Every *.json file directly in dir is an entry.
func DiscoverEntries(dir string) ([]string, error) {
	files, err := doublestar.FilepathGlob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, karma.Format(
			err,
			"unable to glob journal entries in %q",
			dir,
		)
	}

	sort.Strings(files)

	log.Debugf(nil, "discovered %d journal entries in %q", len(files), dir)

	return files, nil
}
