package jsontree

import (
	"errors"
	"io/fs"
	"os"

	"github.com/c2h5oh/datasize"
)

// DefaultFileSizeLimit is the input ceiling applied by ParseFile.  It
// is a policy limit against hostile input, not part of the grammar;
// use ParseFileLimit to choose a different one.
const DefaultFileSizeLimit = 100 * datasize.MB

// ParseFile loads a whole file into memory and parses it as a single
// JSON value.
func ParseFile(path string) (*Value, error) {
	return ParseFileLimit(path, DefaultFileSizeLimit)
}

// ParseFileLimit is like ParseFile with an explicit size ceiling.
func ParseFileLimit(path string, limit datasize.ByteSize) (*Value, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, opError(ErrFileNotFound, "cannot open %q", path)
		}
		return nil, opError(ErrFileReadError, "cannot stat %q: %s", path, err)
	}
	if info.Size() == 0 {
		return nil, opError(ErrFileReadError, "%q is empty", path)
	}
	if datasize.ByteSize(info.Size()) > limit {
		return nil, opError(ErrFileReadError, "%q is larger than %s", path, limit.HumanReadable())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, opError(ErrFileReadError, "cannot read %q: %s", path, err)
	}
	return Parse(data)
}

// SaveFile serializes v and writes it to the named file in a single
// write.
func SaveFile(path string, v *Value, pretty bool) error {
	if v == nil {
		return opError(ErrNilValue, "cannot save nil value")
	}
	text, err := Stringify(v, pretty)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return opError(ErrFileWriteError, "cannot write %q: %s", path, err)
	}
	return nil
}
