package checker

import (
	"os"

	"github.com/rios0rios0/licensegen/domain"
)

// OSFileReader reads license files from the local filesystem.
type OSFileReader struct{}

// NewOSFileReader creates the production file reader.
func NewOSFileReader() *OSFileReader {
	return &OSFileReader{}
}

var _ domain.FileReader = (*OSFileReader)(nil)

func (r *OSFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
