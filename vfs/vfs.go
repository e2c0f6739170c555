package vfs

import (
	"io"
	"os"
)

// Opener is the seam between the export pipeline and the filesystem, so
// photo and entry reads can be tested against an in-memory implementation.
type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

type LocalOSOpener struct {
}

func (o LocalOSOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

var LocalOS = LocalOSOpener{}
