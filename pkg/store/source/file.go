package source

import (
	"context"
	"io"
	"os"
)

// NewFileLoader reads CSV rows from a local path.
func NewFileLoader(path string) Loader {
	return &csvLoader{
		location: path,
		open: func(_ context.Context) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}
