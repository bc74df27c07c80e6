package validate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("Accepts supported types", func(t *testing.T) {
		for _, name := range []string{"a.txt", "b.pdf", "c.docx", "D.TXT"} {
			if err := File(write(name, "content"), 0); err != nil {
				t.Errorf("%s: %v", name, err)
			}
		}
	})

	t.Run("Rejects unsupported extension", func(t *testing.T) {
		if err := File(write("image.png", "x"), 0); err == nil {
			t.Error("Expected rejection of .png")
		}
	})

	t.Run("Rejects empty file", func(t *testing.T) {
		if err := File(write("empty.txt", ""), 0); err == nil {
			t.Error("Expected rejection of empty file")
		}
	})

	t.Run("Rejects oversized file", func(t *testing.T) {
		if err := File(write("big.txt", "0123456789"), 5); err == nil {
			t.Error("Expected rejection above size cap")
		}
	})

	t.Run("Rejects directory", func(t *testing.T) {
		if err := File(dir, 0); err == nil {
			t.Error("Expected rejection of directory")
		}
	})
}
