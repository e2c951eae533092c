package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/pders01/abref/internal/models"
	"github.com/spf13/afero"
)

// ReadError reports a snapshot that could not be read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == models.StdinPath {
		return fmt.Sprintf("failed to read snapshot from stdin: %v", e.Err)
	}
	return fmt.Sprintf("failed to read snapshot %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Read loads the whole snapshot document.
// The path "-" reads from stdin instead of fs.
func Read(fs afero.Fs, path string, stdin io.Reader) ([]byte, error) {
	if path == models.StdinPath {
		if stdin == nil {
			return nil, &ReadError{Path: path, Err: errors.New("no input")}
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		return data, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return data, nil
}
