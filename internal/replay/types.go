package replay

import "time"

// Metric accumulates a value over the frames of one playback.
type Metric[S any] interface {
	Name() string
	Observe(frame S, pos int)
	Value() float64
	Reset()
}

// Observer is notified of every frame in order.
type Observer[S any] interface {
	OnFrame(frame S, pos int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc[S any] func(frame S, pos int)

func (f ObserverFunc[S]) OnFrame(frame S, pos int) { f(frame, pos) }

type Config struct {
	// Interval between frames; zero plays as fast as possible.
	Interval time.Duration
	// From is the first frame played.
	From int
	// Limit caps the number of frames played; zero means no cap.
	Limit int
}

type Result struct {
	Frames  int
	Last    int
	Metrics map[string]float64
}
