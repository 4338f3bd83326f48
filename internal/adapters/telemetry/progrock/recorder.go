// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pack/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the progrock library.
// Each recorded name maps to one vertex, so emitting the same asset twice in a
// session updates the same vertex.
//
// Vertex state is kept on a tape. Closing the recorder reports the failed
// vertexes and a one-line summary to out.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
	out  io.Writer
}

// Summary counts the vertexes recorded in a session by outcome.
type Summary struct {
	Written  int
	Cached   int
	Failed   int
	Duration time.Duration
}

// Total returns the number of recorded vertexes.
func (s Summary) Total() int {
	return s.Written + s.Cached + s.Failed
}

// String renders the summary as reported on Close.
func (s Summary) String() string {
	return fmt.Sprintf("%d assets: %d written, %d unchanged, %d failed in %s",
		s.Total(), s.Written, s.Cached, s.Failed, s.Duration.Round(time.Millisecond))
}

// New creates a new Recorder with a fresh tape, reporting to out.
func New(out io.Writer) *Recorder {
	return NewRecorder(progrock.NewTape(), out)
}

// NewRecorder creates a new Recorder on the given tape.
func NewRecorder(tape *progrock.Tape, out io.Writer) *Recorder {
	return &Recorder{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
		out:  out,
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Summary counts the vertexes on the tape. Vertexes still running are not counted.
func (r *Recorder) Summary() Summary {
	s := Summary{Duration: r.tape.Duration()}
	for _, v := range r.tape.Vertices() {
		switch {
		case v.Error != nil || v.Canceled:
			s.Failed++
		case v.Cached:
			s.Cached++
		case v.Completed != nil:
			s.Written++
		}
	}
	return s
}

// Close completes the session and reports it. Nothing is reported for a
// session that recorded no vertexes.
func (r *Recorder) Close() error {
	r.rec.Complete()
	if err := r.rec.Close(); err != nil {
		return err
	}

	summary := r.Summary()
	if summary.Total() == 0 {
		return nil
	}
	for _, v := range r.tape.Vertices() {
		if v.Error != nil {
			if _, err := fmt.Fprintf(r.out, "failed %s: %s\n", v.Name, v.GetError()); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(r.out, summary.String())
	return err
}
