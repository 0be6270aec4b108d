// File: pkg/combine/config.go
package combine

import (
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"

	"projectsnap/pkg/rules"
)

// ErrInvalidParts is returned when fewer than one output part is requested.
var ErrInvalidParts = errors.New("number of parts must be at least 1")

// Arguments holds the configuration options for a snapshot run.
type Arguments struct {
	Root     string // Directory to snapshot; the part files are written here too.
	Parts    int    // Number of output documents.
	Debug    bool   // Enables debug logging, including every skipped file.
	SelfName string // Name of the running executable, never ingested.
}

// Validate checks the arguments before any filesystem work starts.
func (a Arguments) Validate() error {
	if a.Parts < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidParts, a.Parts)
	}
	if a.Root == "" {
		return errors.New("root directory must not be empty")
	}
	return nil
}

// Progress receives one tick per collected file.
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(num int) error
	Finish() error
}

// Options carries the collaborators of a run. Zero values fall back to the
// OS filesystem, the real clock and the default rule set.
type Options struct {
	Fs       afero.Fs
	Clock    clockwork.Clock
	Rules    *rules.RuleSet
	Progress func(total int) Progress
}

func (o Options) withDefaults(args Arguments) Options {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.Rules == nil {
		o.Rules = rules.Default(args.SelfName, args.Parts)
	}
	return o
}
