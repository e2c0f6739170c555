package attachment

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/kovetskiy/journey2html/vfs"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

type Photo struct {
	Name      string
	FileBytes []byte
	Checksum  string
}

// ResolvePhotos opens every photo referenced by an entry relative to the
// expanded backup directory. A missing photo is logged and skipped so a
// partially damaged backup still renders.
func ResolvePhotos(opener vfs.Opener, base string, names []string) ([]Photo, error) {
	photos := []Photo{}
	for _, name := range names {
		photo, err := preparePhoto(opener, base, name)
		if err != nil {
			log.Warningf(nil, "skipping missing photo: %q", name)
			continue
		}

		checksum, err := GetChecksum(bytes.NewReader(photo.FileBytes))
		if err != nil {
			return nil, karma.Format(
				err,
				"unable to get checksum for photo: %q", photo.Name,
			)
		}

		photo.Checksum = checksum

		photos = append(photos, photo)
	}

	return photos, nil
}

func preparePhoto(opener vfs.Opener, base, name string) (Photo, error) {
	photoPath := filepath.Join(base, name)

	file, err := opener.Open(photoPath)
	if err != nil {
		return Photo{}, karma.Format(err, "unable to open file: %q", photoPath)
	}
	defer func() {
		_ = file.Close()
	}()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return Photo{}, karma.Format(err, "unable to read file: %q", photoPath)
	}

	return Photo{
		Name:      name,
		FileBytes: fileBytes,
	}, nil
}

// Deduper assigns links to photos, collapsing photos with identical
// content onto the first occurrence. Journey duplicates a photo file for
// every entry it appears in, there is no point referencing each copy.
// The checksum index spans the whole export, not a single entry.
type Deduper struct {
	seen   map[string]string
	inline bool
}

func NewDeduper(inline bool) *Deduper {
	return &Deduper{
		seen:   map[string]string{},
		inline: inline,
	}
}

func (deduper *Deduper) Link(photo Photo) string {
	if link, ok := deduper.seen[photo.Checksum]; ok {
		log.Debugf(
			nil,
			"photo %q is a duplicate, reusing %q",
			photo.Name,
			link,
		)

		return link
	}

	link := escapeLink(photo.Name)
	if deduper.inline {
		link = photo.DataURI()
	}

	deduper.seen[photo.Checksum] = link

	return link
}

// DataURI encodes the photo as a base64 data: URI so the resulting page
// is self-contained.
func (photo Photo) DataURI() string {
	mime := http.DetectContentType(photo.FileBytes)

	return "data:" + mime + ";base64," +
		base64.StdEncoding.EncodeToString(photo.FileBytes)
}

func GetChecksum(reader io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, reader); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

func escapeLink(name string) string {
	return (&url.URL{Path: name}).EscapedPath()
}
