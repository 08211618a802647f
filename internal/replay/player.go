// Package replay drives a trace cursor frame by frame, feeding observers and metrics.
package replay

import (
	"context"
	"time"

	"github.com/san-kum/algotrace/internal/trace"
)

type Player[S any] struct {
	frames    []S
	metrics   []Metric[S]
	observers []Observer[S]
}

func New[S any](frames []S) *Player[S] {
	return &Player[S]{
		frames:    frames,
		metrics:   make([]Metric[S], 0),
		observers: make([]Observer[S], 0),
	}
}

func (p *Player[S]) AddMetric(m Metric[S])     { p.metrics = append(p.metrics, m) }
func (p *Player[S]) AddObserver(o Observer[S]) { p.observers = append(p.observers, o) }

// Run plays frames from cfg.From to the end of the trace. Cancelling ctx stops playback
// between frames and returns the partial result with ctx's error.
func (p *Player[S]) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := p.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Last:    trace.NotFound,
		Metrics: make(map[string]float64),
	}

	for _, m := range p.metrics {
		m.Reset()
	}

	c := trace.NewCursor(p.frames)
	if cfg.From > 0 {
		if err := c.Seek(cfg.From - 1); err != nil {
			return nil, err
		}
	}

	var tick *time.Ticker
	if cfg.Interval > 0 {
		tick = time.NewTicker(cfg.Interval)
		defer tick.Stop()
	}

	var err error
	for c.Next() {
		if cfg.Limit > 0 && result.Frames >= cfg.Limit {
			break
		}
		if tick != nil && result.Frames > 0 {
			select {
			case <-ctx.Done():
			case <-tick.C:
			}
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
		}
		if err != nil {
			break
		}

		frame, _ := c.Current()
		pos := c.Pos()
		for _, m := range p.metrics {
			m.Observe(frame, pos)
		}
		for _, obs := range p.observers {
			obs.OnFrame(frame, pos)
		}
		result.Frames++
		result.Last = pos
	}

	for _, m := range p.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, err
}

func (p *Player[S]) validateConfig(cfg Config) error {
	if cfg.Interval < 0 {
		return trace.InvalidArgument("interval must not be negative, got %s", cfg.Interval)
	}
	if cfg.Limit < 0 {
		return trace.InvalidArgument("limit must not be negative, got %d", cfg.Limit)
	}
	if cfg.From < 0 || (cfg.From > 0 && cfg.From >= len(p.frames)) {
		return trace.InvalidArgument("start frame %d outside [0,%d)", cfg.From, len(p.frames))
	}
	return nil
}
