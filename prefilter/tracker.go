package prefilter

// Tracker wraps a Prefilter with effectiveness tracking.
//
// The tracker monitors how many of the lines it checks the prefilter actually
// rejects. When the rejection rate stays below a threshold, checking each
// line is pure overhead and the prefilter is retired: from then on every line
// is passed through to the matcher.
//
// Algorithm:
//  1. Track checked lines and rejected lines
//  2. Every N checks after a warmup, compute the rejection rate
//  3. If the rate is below the threshold, disable the prefilter
//  4. Once disabled, never re-enable (until Reset)
type Tracker struct {
	inner Prefilter

	// Statistics
	checked  uint64 // Lines offered to the prefilter
	rejected uint64 // Lines the prefilter ruled out
	confirms uint64 // Passed lines that really matched

	// Configuration
	checkInterval  uint64
	minRejectRate  float64
	warmupPeriod   uint64
	lastCheckpoint uint64

	active bool
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness (in lines).
	// Default: 64
	CheckInterval uint64

	// MinRejectRate is the minimum acceptable ratio of rejected/checked lines.
	// Default: 0.05 (5%)
	MinRejectRate float64

	// WarmupPeriod is the minimum number of lines before checking effectiveness.
	// Default: 256
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinRejectRate: 0.05,
		WarmupPeriod:  256,
	}
}

// NewTracker creates a new tracker for the given prefilter with default config.
//
// Returns nil if the inner prefilter is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a new tracker with custom configuration.
//
// Returns nil if the inner prefilter is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}

	return &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minRejectRate: config.MinRejectRate,
		warmupPeriod:  config.WarmupPeriod,
		active:        true,
	}
}

// MayMatch reports whether line must be located. A nil or retired tracker
// passes every line.
func (t *Tracker) MayMatch(line []byte) bool {
	if t == nil || !t.active {
		return true
	}

	t.checked++
	ok := t.inner.MayMatch(line)
	if !ok {
		t.rejected++
	}
	t.checkEffectiveness()
	return ok
}

// ConfirmMatch should be called when a passed line actually matched.
func (t *Tracker) ConfirmMatch() {
	if t != nil {
		t.confirms++
	}
}

// IsActive returns true if the prefilter is still being used.
func (t *Tracker) IsActive() bool {
	return t != nil && t.active
}

// Inner returns the underlying prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

// Stats returns the current tracking statistics.
func (t *Tracker) Stats() (checked, rejected, confirms uint64, active bool) {
	if t == nil {
		return 0, 0, 0, false
	}
	return t.checked, t.rejected, t.confirms, t.active
}

// Reset clears statistics and re-enables the prefilter.
func (t *Tracker) Reset() {
	t.checked = 0
	t.rejected = 0
	t.confirms = 0
	t.lastCheckpoint = 0
	t.active = true
}

// checkEffectiveness evaluates whether to disable the prefilter.
// A prefilter that rejects every line is never retired.
func (t *Tracker) checkEffectiveness() {
	if t.inner.IsNever() || t.checked < t.warmupPeriod {
		return
	}
	if t.checked-t.lastCheckpoint < t.checkInterval {
		return
	}
	t.lastCheckpoint = t.checked

	rate := float64(t.rejected) / float64(t.checked)
	if rate < t.minRejectRate {
		t.active = false
	}
}
