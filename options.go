package scn

import (
	"io"

	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/scnlog"
)

// scanConfig holds everything a ScanOption can set. Unexported: callers
// only ever see ScanOption values built by the With... functions, mirroring the teacher's
// Options/NewOptions/SetReadTimeout chaining shape in spirit, generalized
// from a single struct with setter methods to the functional-options form
// more common across the rest of the pack.
type scanConfig struct {
	locale *locale.Locale
	tracer scnlog.Tracer
}

func newScanConfig() *scanConfig {
	return &scanConfig{locale: locale.Classic(), tracer: scnlog.Discard{}}
}

// ScanOption configures a single New/MustNew/Scan/Input/Prompt call; it is
// passed among the destinations.
type ScanOption func(*scanConfig)

// WithLocale sets the locale used, in place of the classic '.'/',' locale,
// to parse the fields that carry the `L` flag (numeric fields and the bool
// literal words). Fields without `L` always use the classic locale.
func WithLocale(l *locale.Locale) ScanOption {
	return func(c *scanConfig) { c.locale = l }
}

// WithDebugLog installs a trace logger that reports which field is being
// scanned, how many units each reader consumed, and why a reader failed.
// Disabled (a zero-cost no-op) unless set.
func WithDebugLog(w io.Writer) ScanOption {
	return func(c *scanConfig) { c.tracer = scnlog.New(w) }
}
