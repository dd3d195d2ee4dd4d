package reportstorage

import (
	"fmt"
	"os"
	"path/filepath"
)

type ReportStorage interface {
	Store(data []byte) error
}

// FileReportStorage writes a rendered report to a fixed path, creating the
// parent directory when needed.
type FileReportStorage struct {
	Path string
}

func CreateFileReportStorage(path string) (FileReportStorage, error) {
	if path == "" {
		return FileReportStorage{}, fmt.Errorf("report output path is empty")
	}
	return FileReportStorage{Path: path}, nil
}

func (s FileReportStorage) Store(data []byte) error {
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory '%s': %w", dir, err)
		}
	}

	outputFile, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer outputFile.Close()

	if _, err := outputFile.Write(data); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return outputFile.Close()
}
