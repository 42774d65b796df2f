package cli

import (
	"fmt"
	"io"
	"os"

	xterm "github.com/charmbracelet/x/term"
	"github.com/schollz/progressbar/v3"
)

// progressReporter drives a progress bar from document callbacks. The bar is
// created lazily since the total is only known once discovery is done.
type progressReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newProgressReporter(w io.Writer) *progressReporter {
	return &progressReporter{w: w}
}

// Update is called serially by the metrics provider
func (p *progressReporter) Update(done, total int, document string) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.w),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("Analyzing"),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(p.w)
			}),
		)
	}
	_ = p.bar.Set(done)
}

// Finish completes the bar; safe on a nil reporter
func (p *progressReporter) Finish() {
	if p == nil || p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}

func isTerminal(f *os.File) bool {
	return xterm.IsTerminal(f.Fd())
}

// terminalWidth returns the width of f, or 0 when it is not a terminal
func terminalWidth(f *os.File) int {
	if !isTerminal(f) {
		return 0
	}
	cols, _, err := xterm.GetSize(f.Fd())
	if err != nil {
		return 0
	}
	return cols
}
