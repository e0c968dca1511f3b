package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// StampLayout names report files to minute precision.
const StampLayout = "20060102_1504"

// Files writes report artifacts into Dir. The directory is never created:
// writing into a missing directory is an error.
type Files struct {
	Dir string
}

// Path returns the artifact path for a run stamped at t.
func (f Files) Path(t time.Time, ext string) string {
	return filepath.Join(f.Dir, "report_"+t.Format(StampLayout)+ext)
}

// Write creates (or truncates) the artifact for t and writes data to it.
// A second run within the same minute overwrites the earlier file.
func (f Files) Write(t time.Time, ext string, data []byte) (string, error) {
	path := f.Path(t, ext)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return "", fmt.Errorf("writing report file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing report file: %w", err)
	}
	return path, nil
}
