package rules

// StalemateDetector counts consecutive rounds in which the total number of
// owned provinces does not change.
type StalemateDetector struct {
	maxIdle   int
	idle      int
	lastOwned int
}

// NewStalemateDetector starts tracking from the given owned province count.
// A maxIdle of zero or less disables detection.
func NewStalemateDetector(maxIdle, owned int) *StalemateDetector {
	return &StalemateDetector{maxIdle: maxIdle, lastOwned: owned}
}

// Observe records the owned province count at the end of a round and reports
// whether the idle threshold has been reached.
func (sd *StalemateDetector) Observe(owned int) bool {
	if owned == sd.lastOwned {
		sd.idle++
	} else {
		sd.idle = 0
	}
	sd.lastOwned = owned
	return sd.maxIdle > 0 && sd.idle >= sd.maxIdle
}

// Reset clears the idle count
func (sd *StalemateDetector) Reset(owned int) {
	sd.idle = 0
	sd.lastOwned = owned
}

func (sd *StalemateDetector) Idle() int    { return sd.idle }
func (sd *StalemateDetector) MaxIdle() int { return sd.maxIdle }
