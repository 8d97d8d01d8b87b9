package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/retro-tetris/internal/core"
)

// entrySep separates key=value entries inside the data file.
const entrySep = ";;;"

var hsPattern = regexp.MustCompile(`hs=(\d*)`)

// DataFile keeps the high score in a small text file of ;;;-separated
// key=value entries, e.g. "hs=1200;;;". Other entries are preserved.
type DataFile struct {
	path string
	mu   sync.Mutex
}

var _ core.HighScoreStore = (*DataFile)(nil)

// NewDataFile returns a store backed by the file at path. The file is
// created on first save.
func NewDataFile(path string) (*DataFile, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &DataFile{path: path}, nil
}

// Path returns the file location.
func (d *DataFile) Path() string {
	return d.path
}

// LoadHighScore returns the stored value. A missing file or missing key is 0.
func (d *DataFile) LoadHighScore() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	blob, err := d.read()
	if err != nil {
		return 0, err
	}
	m := hsPattern.FindStringSubmatch(blob)
	if m == nil || m[1] == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("storage: bad high score %q in %s: %w", m[1], d.path, err)
	}
	return n, nil
}

// SaveHighScore rewrites the hs entry, appending it when absent.
func (d *DataFile) SaveHighScore(score int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	blob, err := d.read()
	if err != nil {
		return err
	}

	entry := "hs=" + strconv.Itoa(score)
	switch {
	case hsPattern.MatchString(blob):
		blob = hsPattern.ReplaceAllLiteralString(blob, entry)
	case blob == "":
		blob = entry + entrySep
	default:
		if !strings.HasSuffix(blob, entrySep) {
			blob += entrySep
		}
		blob += entry + entrySep
	}

	return d.write(blob)
}

func (d *DataFile) read() (string, error) {
	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read %s: %w", d.path, err)
	}
	return string(data), nil
}

// write replaces the file atomically via a temp file in the same directory.
func (d *DataFile) write(blob string) error {
	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".data-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), d.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", d.path, err)
	}
	return nil
}
