package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"numberhunt/internal/domain"
)

const photoExt = ".jpg"

// PhotoRepo implements repository.PhotoRepository over a flat directory
// of zero-padded JPEG files
type PhotoRepo struct {
	dir string
}

// NewPhotoRepo creates a new photo repository
func NewPhotoRepo(dir string) *PhotoRepo {
	return &PhotoRepo{dir: dir}
}

// Path returns the file path a photo for the given number lives at
func (r *PhotoRepo) Path(number int) string {
	return filepath.Join(r.dir, domain.FormatNumber(number)+photoExt)
}

// Put stores the photo for the given number, overwriting any existing file
func (r *PhotoRepo) Put(number int, data []byte) error {
	if err := os.WriteFile(r.Path(number), data, 0o644); err != nil {
		return fmt.Errorf("write photo %s: %w", domain.FormatNumber(number), err)
	}
	return nil
}

// Exists reports whether a photo for the given number is archived
func (r *PhotoRepo) Exists(number int) bool {
	_, err := os.Stat(r.Path(number))
	return err == nil
}

// ListAll returns all archived numbers, ascending by zero-padded filename
func (r *PhotoRepo) ListAll() ([]int, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read photo directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), photoExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	numbers := make([]int, 0, len(names))
	for _, name := range names {
		n, err := strconv.Atoi(strings.TrimSuffix(name, photoExt))
		if err != nil {
			// Foreign files in the archive directory are not ours to report
			continue
		}
		numbers = append(numbers, n)
	}

	return numbers, nil
}
