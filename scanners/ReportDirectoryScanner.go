package scanners

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
	"github.com/reaandrew/slitherreport/core"
	"github.com/reaandrew/slitherreport/utils"
	log "github.com/sirupsen/logrus"
)

const DefaultReportPattern = "*.json"

// ReportDirectoryScanner loads every report file in a directory whose name
// matches the report pattern.
type ReportDirectoryScanner struct {
	pattern  glob.Glob
	progress utils.ProgressReporter
}

func NewReportDirectoryScanner(pattern string, progress utils.ProgressReporter) (*ReportDirectoryScanner, error) {
	if pattern == "" {
		pattern = DefaultReportPattern
	}
	compiled, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid report pattern '%s': %w", pattern, err)
	}
	if progress == nil {
		progress = utils.NoopProgressReporter{}
	}
	return &ReportDirectoryScanner{pattern: compiled, progress: progress}, nil
}

// Scan parses the matching files of directory, sorted by name. Files that
// cannot be read or parsed are logged and skipped. A missing directory
// yields ErrReportDirNotFound.
func (s *ReportDirectoryScanner) Scan(directory string) ([]core.ReportFile, error) {
	paths, err := s.listReportFiles(directory)
	if err != nil {
		return nil, err
	}

	s.progress.SetTotal(len(paths))
	reports := make([]core.ReportFile, 0, len(paths))
	for _, path := range paths {
		report, err := loadReport(path)
		s.progress.Increment()
		if err != nil {
			log.Warnf("Skipping %s: %v", path, err)
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (s *ReportDirectoryScanner) listReportFiles(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", core.ErrReportDirNotFound, directory)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list report directory '%s': %w", directory, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !s.pattern.Match(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(directory, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// loadReport decodes a report. A top-level value that is not an object
// loads as an empty document.
func loadReport(path string) (core.ReportFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return core.ReportFile{}, fmt.Errorf("failed to read file: %w", err)
	}

	var value interface{}
	if err := json.Unmarshal(content, &value); err != nil {
		return core.ReportFile{}, fmt.Errorf("failed to parse JSON: %w", err)
	}

	document, ok := value.(map[string]interface{})
	if !ok {
		document = map[string]interface{}{}
	}

	return core.ReportFile{
		Name:     filepath.Base(path),
		Path:     path,
		Document: document,
	}, nil
}
