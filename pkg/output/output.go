package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/stylegen-io/stylegen/pkg/styerrors"
)

// WriteFile writes data to path through a uniquely-named temp file in the
// same directory, then renames it into place.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", styerrors.ErrWriteFile, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", styerrors.ErrWriteFile, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("%w: %w", styerrors.ErrWriteFile, err)
	}

	return nil
}

// WriteFileIfChanged writes data to path unless the target already holds
// byte-identical content. It reports whether a write happened.
func WriteFileIfChanged(path string, data []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := WriteFile(path, data); err != nil {
		return false, err
	}

	return true, nil
}
