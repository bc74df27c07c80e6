package cmd

import (
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/spf13/cobra"

	"github.com/docdeck/docdeck/internal/validate"
)

var uploadDir string

var uploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Upload documents for ingestion",
	Long: `Upload one or more files to the catalog. With --dir every supported
file (.pdf, .docx, .txt) under the directory is uploaded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if uploadDir != "" {
			found, err := collectUploads(uploadDir)
			if err != nil {
				return err
			}
			paths = append(paths, found...)
		}
		if len(paths) == 0 {
			return fmt.Errorf("nothing to upload: pass files or --dir")
		}

		client := newClient()
		failed := 0
		for _, path := range paths {
			if err := validate.File(path, cfg.MaxUploadBytes()); err != nil {
				fmt.Printf("skip  %s: %v\n", path, err)
				failed++
				continue
			}
			doc, err := client.Upload(cmd.Context(), path)
			if err != nil {
				fmt.Printf("fail  %s: %v\n", path, err)
				failed++
				continue
			}
			fmt.Printf("ok    %s -> %s (%s)\n", path, doc.ID, doc.Title)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d upload(s) failed", failed, len(paths))
		}
		return nil
	},
}

// collectUploads walks dir and returns every supported file, sorted. The
// walk runs callbacks concurrently, hence the mutex.
func collectUploads(dir string) ([]string, error) {
	var mu sync.Mutex
	var paths []string

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !validate.Allowed(path) {
			return nil
		}
		mu.Lock()
		paths = append(paths, path)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadDir, "dir", "d", "", "upload every supported file under this directory")
	rootCmd.AddCommand(uploadCmd)
}
