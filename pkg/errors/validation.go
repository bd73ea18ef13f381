package errors

import (
	"os"
	"unicode"
)

const maxPathLength = 4096

// ValidatePath validates a user supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 bytes
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateInputFile validates a path that must name an existing regular file.
// A missing file is reported as FILE_NOT_FOUND, a directory as INVALID_INPUT.
func ValidateInputFile(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Wrap(ErrCodeFileNotFound, err, "file not found: %s", path)
	}
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "cannot access %s", path)
	}
	if info.IsDir() {
		return New(ErrCodeInvalidInput, "%s is a directory", path)
	}

	return nil
}

// ValidateOutputPath validates a path the converter will create or
// overwrite. It must not name an existing directory.
func ValidateOutputPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return New(ErrCodeInvalidPath, "output %s is a directory", path)
	}

	return nil
}
