// Package validate performs the client-side pre-flight checks on upload
// candidates. The remote store remains the authority; these checks only
// reject files the ingestion endpoint is known to refuse, before the bytes
// travel.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// allowedTypes are the extensions the ingestion endpoint can extract text
// from.
var allowedTypes = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// File checks that path names a regular, non-empty file of an accepted
// type not exceeding maxSize bytes.
func File(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat upload file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s is empty", filepath.Base(path))
	}
	if maxSize > 0 && info.Size() > maxSize {
		return fmt.Errorf("%s exceeds the %d MB upload limit", filepath.Base(path), maxSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !allowedTypes[ext] {
		return fmt.Errorf("file type %q is not supported (want .pdf, .docx or .txt)", ext)
	}
	return nil
}

// Allowed reports whether the extension of path is an accepted type.
// Used when walking directories for batch upload.
func Allowed(path string) bool {
	return allowedTypes[strings.ToLower(filepath.Ext(path))]
}
