package utils

import (
	"fmt"
	"io"
	"time"

	"github.com/gosuri/uilive"
)

// ProgressPrinter keeps a single live line of training progress on the
// terminal, polling progress at the given frequency.
type ProgressPrinter struct {
	progress  func() (completed, total int)
	frequency time.Duration
	doneCh    chan struct{}
	stoppedCh chan struct{}

	writer *uilive.Writer
}

func NewProgressPrinter(out io.Writer, progress func() (int, int), frequency time.Duration) *ProgressPrinter {
	writer := uilive.New()
	writer.Out = out
	return &ProgressPrinter{
		progress:  progress,
		frequency: frequency,
		doneCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
		writer:    writer,
	}
}

func (p *ProgressPrinter) Start() {
	p.writer.Start()
	go func() {
		defer close(p.stoppedCh)
		ticker := time.NewTicker(p.frequency)
		defer ticker.Stop()
		for {
			select {
			case <-p.doneCh:
				p.print()
				return
			case <-ticker.C:
				p.print()
			}
		}
	}()
}

// Stop prints the final progress and releases the terminal.
func (p *ProgressPrinter) Stop() {
	close(p.doneCh)
	<-p.stoppedCh
	p.writer.Stop()
}

func (p *ProgressPrinter) print() {
	completed, total := p.progress()
	percent := 0.0
	if total > 0 {
		percent = 100 * float64(completed) / float64(total)
	}
	fmt.Fprintf(p.writer, "episodes: %d/%d (%.1f%%)\n", completed, total, percent)
}
