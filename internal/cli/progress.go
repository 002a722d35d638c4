package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// CLIProgressReporter implements dependency-analysis progress reporting with
// a progress bar.
type CLIProgressReporter struct {
	quiet          bool
	bar            *progressbar.ProgressBar
	totalFiles     int
	processedFiles int
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{quiet: quiet}
}

func (c *CLIProgressReporter) OnAnalysisStart(totalFiles int) {
	if c.quiet {
		return
	}
	c.totalFiles = totalFiles
	c.processedFiles = 0

	c.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Parsing includes"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIProgressReporter) OnFileParsed(processedFiles, totalFiles int, fileName string) {
	if c.quiet || c.bar == nil {
		return
	}
	c.processedFiles = processedFiles
	c.bar.Add(1)
}

func (c *CLIProgressReporter) OnAnalysisComplete(edgeCount int, duration time.Duration) {
	if c.quiet {
		return
	}
	printInfo("Resolved %d dependency edges in %s", edgeCount, duration.Round(time.Millisecond))
}
