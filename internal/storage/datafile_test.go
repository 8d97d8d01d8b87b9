package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataFileMissingIsZero(t *testing.T) {
	d, err := NewDataFile(filepath.Join(t.TempDir(), "data.txt"))
	if err != nil {
		t.Fatalf("NewDataFile() failed: %v", err)
	}
	got, err := d.LoadHighScore()
	if err != nil || got != 0 {
		t.Errorf("LoadHighScore() = %d, %v; want 0, nil", got, err)
	}
}

func TestDataFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.txt")
	d, err := NewDataFile(path)
	if err != nil {
		t.Fatalf("NewDataFile() failed: %v", err)
	}

	if err := d.SaveHighScore(1200); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != "hs=1200;;;" {
		t.Errorf("file = %q, want %q", raw, "hs=1200;;;")
	}

	got, err := d.LoadHighScore()
	if err != nil || got != 1200 {
		t.Errorf("LoadHighScore() = %d, %v; want 1200, nil", got, err)
	}
}

func TestDataFilePreservesOtherEntries(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		want    string
	}{
		{"replace", "vol=7;;;hs=50;;;name=ada", "vol=7;;;hs=900;;;name=ada"},
		{"append after separator", "vol=7;;;", "vol=7;;;hs=900;;;"},
		{"append without separator", "vol=7", "vol=7;;;hs=900;;;"},
		{"empty value", "hs=;;;", "hs=900;;;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.txt")
			if err := os.WriteFile(path, []byte(tt.initial), 0o644); err != nil {
				t.Fatal(err)
			}
			d, _ := NewDataFile(path)
			if err := d.SaveHighScore(900); err != nil {
				t.Fatalf("SaveHighScore() failed: %v", err)
			}
			raw, _ := os.ReadFile(path)
			if string(raw) != tt.want {
				t.Errorf("file = %q, want %q", raw, tt.want)
			}
		})
	}
}

func TestDataFileMissingKeyIsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("vol=7;;;"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, _ := NewDataFile(path)
	got, err := d.LoadHighScore()
	if err != nil || got != 0 {
		t.Errorf("LoadHighScore() = %d, %v; want 0, nil", got, err)
	}
}

func TestDataFileUnreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the file cannot be read.
	d, _ := NewDataFile(dir)
	if _, err := d.LoadHighScore(); err == nil {
		t.Error("expected error reading a directory")
	}
}
