package internal

import (
	"time"

	"github.com/sirupsen/logrus"
)

// ScanStats counters for one scan. Owned by the scan loop, no locking.
type ScanStats struct {
	start   time.Time
	Lines   int
	Skipped int
	Matches int
	Emitted int
}

func (s *ScanStats) Start() {
	s.start = time.Now()
}

func (s *ScanStats) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Log writes the totals at debug level.
func (s *ScanStats) Log(path string) {
	logrus.WithFields(logrus.Fields{
		"file":    path,
		"lines":   s.Lines,
		"skipped": s.Skipped,
		"matches": s.Matches,
		"emitted": s.Emitted,
		"elapsed": s.Elapsed(),
	}).Debug("Scan finished")
}
