package styerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrParse indicates an error occurred while parsing a style file.
	ErrParse = errors.New("parse style file")

	// ErrInvalidType indicates an unknown or unresolvable value type.
	ErrInvalidType = errors.New("invalid type")

	// ErrUnknownName indicates a reference to an undeclared name.
	ErrUnknownName = errors.New("unknown name")

	// ErrStructNotFound indicates a struct shape couldn't be resolved.
	ErrStructNotFound = errors.New("struct not found")

	// ErrFamilyNotFound indicates a font family is missing from the
	// collected family table.
	ErrFamilyNotFound = errors.New("font family not found")

	// ErrMaskNotFound indicates an icon mask is missing from the collected
	// mask table.
	ErrMaskNotFound = errors.New("icon mask not found")

	// ErrModifierNotFound indicates an unregistered icon modifier name.
	ErrModifierNotFound = errors.New("icon modifier not found")

	// ErrBadIcon indicates an icon image failed validation.
	ErrBadIcon = errors.New("bad icon")

	// ErrInvalidFormat indicates an unexpected or invalid format was
	// encountered.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrParseArgs indicates an error occurred while parsing arguments.
	ErrParseArgs = errors.New("parse arguments")

	// ErrInvalidArguments indicates invalid arguments were provided.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInvalidManifest indicates a project manifest failed validation.
	ErrInvalidManifest = errors.New("invalid manifest")
)
