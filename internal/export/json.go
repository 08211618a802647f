// Package export renders traces as JSON documents, CSV step tables and SVG frames.
// Exports are one-way; nothing here reads them back.
package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

type Document[S any] struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Mode      string             `json:"mode"`
	Algorithm string             `json:"algorithm"`
	Input     any                `json:"input,omitempty"`
	Steps     int                `json:"steps"`
	Frames    []S                `json:"frames"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func NewDocument[S any](mode, algorithm string, input any, frames []S, metrics map[string]float64) Document[S] {
	if frames == nil {
		frames = []S{}
	}
	return Document[S]{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Mode:      mode,
		Algorithm: algorithm,
		Input:     input,
		Steps:     len(frames),
		Frames:    frames,
		Metrics:   metrics,
	}
}

func WriteJSON[S any](w io.Writer, doc Document[S]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
