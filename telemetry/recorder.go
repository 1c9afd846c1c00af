package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

const defaultFlushEvery = 256

// Recorder buffers samples and writes them as CSV. The header is written with
// the first batch only.
type Recorder struct {
	out           io.Writer
	buf           []Sample
	flushEvery    int
	headerWritten bool
}

// NewRecorder returns a recorder writing to out. A nil recorder discards.
func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out, flushEvery: defaultFlushEvery}
}

// Record buffers s and flushes once the buffer is full.
func (r *Recorder) Record(s Sample) error {
	if r == nil {
		return nil
	}
	r.buf = append(r.buf, s)
	if len(r.buf) >= r.flushEvery {
		return r.Flush()
	}
	return nil
}

// Flush writes any buffered samples.
func (r *Recorder) Flush() error {
	if r == nil || len(r.buf) == 0 {
		return nil
	}
	if !r.headerWritten {
		if err := gocsv.Marshal(r.buf, r.out); err != nil {
			return fmt.Errorf("telemetry: write samples: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(r.buf, r.out); err != nil {
			return fmt.Errorf("telemetry: write samples: %w", err)
		}
	}
	r.buf = r.buf[:0]
	return nil
}
