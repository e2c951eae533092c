package lookup

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pders01/abref/internal/logging"
	"github.com/pders01/abref/internal/models"
	"github.com/pders01/abref/internal/source"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrNotFound means no reference matched the query
	ErrNotFound = errors.New("no matching reference")
	// ErrEmptyQuery means the name query was empty
	ErrEmptyQuery = errors.New("name query must not be empty")
)

// DecodeError reports a snapshot that is not valid JSON
type DecodeError struct {
	Path string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "failed to decode snapshot: invalid JSON"
	}
	return fmt.Sprintf("failed to decode snapshot %q: invalid JSON", e.Path)
}

type options struct {
	refsPath string
	stdin    io.Reader
	log      *logging.Logger
}

// Option customizes a lookup
type Option func(*options)

// WithRefsPath sets the gjson path of the reference table
func WithRefsPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.refsPath = path
		}
	}
}

// WithStdin sets the reader used when the snapshot path is "-"
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		o.stdin = r
	}
}

// WithLogger sets the logger receiving debug lines
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// FindFile reads the snapshot at path from fs and runs Find on it.
// Read failures are returned wrapped; decode failures as *DecodeError.
func FindFile(fs afero.Fs, path string, q models.Query, opts ...Option) (models.Ref, error) {
	// Reject the query before touching the filesystem
	if q.Name == "" {
		return models.Ref{}, ErrEmptyQuery
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	data, err := source.Read(fs, path, o.stdin)
	if err != nil {
		return models.Ref{}, err
	}

	ref, err := Find(data, q, opts...)
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		decodeErr.Path = path
	}
	return ref, err
}

// Find scans the reference table of a snapshot document in document order
// and returns the first reference matching q.
//
// A missing or non-object reference table is treated as empty. Entries with
// no name, a non-string name or a role other than q.Role are skipped.
// A key that appears more than once keeps its first position and its last value.
func Find(data []byte, q models.Query, opts ...Option) (models.Ref, error) {
	o := options{refsPath: models.DefaultRefsPath}
	for _, opt := range opts {
		opt(&o)
	}

	if q.Name == "" {
		return models.Ref{}, ErrEmptyQuery
	}

	if !utf8.Valid(data) || !gjson.ValidBytes(data) {
		return models.Ref{}, &DecodeError{}
	}

	refs := gjson.GetBytes(data, o.refsPath)
	if !refs.IsObject() {
		o.log.Debugf("no reference table at %s", o.refsPath)
		return models.Ref{}, ErrNotFound
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(q.Name)

	// Last value of every key, so duplicates behave like a decoded object
	values := make(map[string]gjson.Result)
	refs.ForEach(func(key, info gjson.Result) bool {
		values[key.String()] = info
		return true
	})

	var (
		match   models.Ref
		found   bool
		scanned int
	)
	seen := make(map[string]bool, len(values))
	refs.ForEach(func(rawKey, _ gjson.Result) bool {
		key := rawKey.String()
		if seen[key] {
			return true
		}
		seen[key] = true
		info := values[key]
		scanned++

		if !info.IsObject() {
			o.log.Warnf("skipping %s: entry is not an object", key)
			return true
		}

		role := info.Get("role")
		if q.HasRole() && (role.Type != gjson.String || role.Str != q.Role) {
			return true
		}

		name := info.Get("name")
		if name.Exists() && name.Type != gjson.String {
			o.log.Warnf("skipping %s: name is not a string", key)
			return true
		}
		if name.Str == "" {
			o.log.Debugf("skipping %s: no name", key)
			return true
		}

		if !strings.Contains(lower.String(name.Str), needle) {
			return true
		}

		match = models.Ref{Key: key, Name: name.Str}
		if role.Type == gjson.String {
			match.Role = role.Str
		}
		found = true
		return false
	})

	o.log.Debugf("scanned %d references", scanned)

	if !found {
		return models.Ref{}, ErrNotFound
	}
	return match, nil
}
