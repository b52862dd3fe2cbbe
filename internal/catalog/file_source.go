package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	logger "github.com/Bparsons0904/goLogger"
)

// FileSource reads the catalog document from disk on every Load.
type FileSource struct {
	path string
	log  logger.Logger
}

func NewFileSource(path string) *FileSource {
	return &FileSource{
		path: path,
		log:  logger.New("catalog").File("file_source"),
	}
}

func (s *FileSource) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := s.log.Function("Load")

	info, err := os.Stat(s.path)
	if err != nil || info.IsDir() {
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			log.Warn("catalog file missing", "path", s.path)
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.path)
		}
		log.Er("failed to stat catalog file", err, "path", s.path)
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Er("failed to read catalog file", err, "path", s.path)
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	c, err := DecodeDocument(data)
	if err != nil {
		log.Er("failed to decode catalog file", err, "path", s.path)
		return nil, err
	}
	return c, nil
}
