package sorter

import (
	"time"

	"go.uber.org/zap"
)

// Recorder receives the statistics of finished sorts
type Recorder interface {
	ObserveSort(direction string, stats Stats)
}

// Option configures a Sorter
type Option func(*Sorter)

// WithObserver sets the swap observer
func WithObserver(o Observer) Option {
	return func(s *Sorter) {
		s.observer = o
	}
}

// WithPace inserts a delay after every swap. It only slows the animation
// down; the final order is the same.
func WithPace(d time.Duration) Option {
	return func(s *Sorter) {
		if d < 0 {
			d = 0
		}
		s.pace = d
	}
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(s *Sorter) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRecorder reports stats of every finished sort
func WithRecorder(r Recorder) Option {
	return func(s *Sorter) {
		s.recorder = r
	}
}
