package trackconv

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrMissingOutput rejects an operation called without an output path.
var ErrMissingOutput = errors.New("output file path is required")

// ErrBadExtension rejects an operation whose input or output file extension
// does not match the requested conversion.
var ErrBadExtension = errors.New("unexpected file extension")

func requireOutput(path, wantExt, kind string) error {
	if path == "" {
		return ErrMissingOutput
	}
	if strings.ToLower(filepath.Ext(path)) != wantExt {
		return fmt.Errorf("%w: output file must be a %s file", ErrBadExtension, kind)
	}
	return nil
}

func (c *Converter) requireInput(wantExt, kind string) error {
	if c.inputExt != wantExt {
		return fmt.Errorf("%w: input file must be a %s file", ErrBadExtension, kind)
	}
	return nil
}
