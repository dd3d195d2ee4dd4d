package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter defines methods for reporting progress.
type ProgressReporter interface {
	// SetTotal reinitializes the progress bar with the new total count.
	SetTotal(total int)
	// Increment increases the progress by one.
	Increment()
}

// BarProgressReporter renders progress with a terminal progress bar.
type BarProgressReporter struct {
	description string
	writer      io.Writer
	bar         *progressbar.ProgressBar
	total       int
}

// NewBarProgressReporter creates a new BarProgressReporter writing to w.
func NewBarProgressReporter(total int, description string, w io.Writer) *BarProgressReporter {
	p := &BarProgressReporter{
		description: description,
		writer:      w,
	}
	p.SetTotal(total)
	return p
}

// SetTotal reinitializes the progress bar with the new total count. A total
// below one renders a spinner.
func (p *BarProgressReporter) SetTotal(total int) {
	p.total = total
	barMax := total
	if barMax < 1 {
		barMax = -1
	}
	p.bar = progressbar.NewOptions(barMax,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionSetDescription(p.description),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100e6),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(p.writer, "\n")
		}),
	)
}

// Increment increases the progress bar by one.
func (p *BarProgressReporter) Increment() {
	_ = p.bar.Add(1)
}

// NoopProgressReporter discards progress updates.
type NoopProgressReporter struct{}

func (NoopProgressReporter) SetTotal(int) {}

func (NoopProgressReporter) Increment() {}
