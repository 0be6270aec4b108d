package cmd

import (
	"os"

	"github.com/schollz/progressbar/v3"

	"projectsnap/pkg/combine"
)

func newProgressBar(total int) combine.Progress {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Collecting files"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}
