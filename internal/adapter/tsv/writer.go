// Package tsv writes readings as tab-separated lines: name, month, tmax,
// precipitation, dew point.
package tsv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/couchcryptid/climate-wheel-map/internal/domain"
)

// Writer implements pipeline.ReadingSink on an io.Writer, normally stdout.
type Writer struct {
	w *csv.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &Writer{w: cw}
}

// WriteReadings writes one line per reading and flushes.
func (t *Writer) WriteReadings(_ context.Context, readings []domain.Reading) error {
	for _, r := range readings {
		rec := []string{
			r.Location,
			strconv.Itoa(r.Month),
			formatFloat(r.TmaxF),
			formatFloat(r.PrecipMM),
			formatFloat(r.DewPointF),
		}
		if err := t.w.Write(rec); err != nil {
			return fmt.Errorf("write reading: %w", err)
		}
	}
	t.w.Flush()
	return t.w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
