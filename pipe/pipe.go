// Package pipe implements a unidirectional in-memory data stream with
// independently closable read and write ends.
//
// A Pipe hands out Reader and Writer views onto one shared state record.
// Reads never block the calling goroutine: they either complete against
// queued data immediately or return an unresolved future satisfied by a
// later write or close. Copies of a Reader or Writer alias the same pipe.
package pipe

import (
	"errors"
	"sync"

	"github.com/jvrplmlmn/mesos/future"
)

// ErrClosed is the failure delivered to reads on a closed read end.
var ErrClosed = errors.New("pipe: closed")

type endState int

const (
	open endState = iota
	closed
)

// pipeData is the record shared by a pipe and all of its handles. Every
// state transition happens under mu; promises extracted during a
// transition are resolved only after mu is released, since resolving one
// runs caller continuations that may call back into the pipe.
type pipeData struct {
	mu sync.Mutex

	readEnd  endState
	writeEnd endState

	// Invariant: at most one of writes and reads is non-empty.
	writes []string
	reads  []*future.Promise[string]

	readerClosed *future.Promise[future.Nothing]
}

type Pipe struct {
	data *pipeData
}

func New() Pipe {
	return Pipe{data: &pipeData{
		readerClosed: future.NewPromise[future.Nothing](),
	}}
}

func (p Pipe) Reader() Reader {
	return Reader{data: p.data}
}

func (p Pipe) Writer() Writer {
	return Writer{data: p.data}
}

type Reader struct {
	data *pipeData
}

type Writer struct {
	data *pipeData
}

// Read returns the next payload written to the pipe. Once the write end
// is closed and all queued payloads are drained, every Read resolves to
// the empty string (end-of-file). Read fails with ErrClosed after the
// read end is closed.
func (r Reader) Read() *future.Future[string] {
	d := r.data

	d.mu.Lock()
	switch {
	case d.readEnd == closed:
		d.mu.Unlock()
		return future.Failed[string](ErrClosed)
	case len(d.writes) > 0:
		s := d.writes[0]
		d.writes = d.writes[1:]
		d.mu.Unlock()
		return future.Value(s)
	case d.writeEnd == closed:
		d.mu.Unlock()
		return future.Value("") // End-of-file.
	default:
		p := future.NewPromise[string]()
		d.reads = append(d.reads, p)
		d.mu.Unlock()
		return p.Future()
	}
}

// Close shuts the read end, discarding queued payloads and failing all
// outstanding reads with ErrClosed. It reports whether this call closed
// the end; closing twice returns false. If the write end is still open
// the writer is notified exactly once via ReaderClosed.
func (r Reader) Close() bool {
	d := r.data

	var reads []*future.Promise[string]
	notify := false
	wasOpen := false

	d.mu.Lock()
	if d.readEnd == open {
		// Throw away outstanding data.
		d.writes = nil

		// Extract the pending reads so we can fail them.
		reads, d.reads = d.reads, nil

		wasOpen = true
		d.readEnd = closed

		// Notify if write-end is still open!
		notify = d.writeEnd == open
	}
	d.mu.Unlock()

	// NOTE: We transition the promises outside the critical section
	// to avoid triggering callbacks that try to reacquire the lock.
	if wasOpen {
		for _, p := range reads {
			p.Fail(ErrClosed)
		}
		if notify {
			d.readerClosed.Set(future.Nothing{})
		}
	}

	return wasOpen
}

// Write delivers s to a waiting reader, or queues it for a later read.
// It reports whether the pipe accepted the payload; a pipe with either
// end closed rejects all writes. Empty payloads are accepted but never
// delivered.
func (w Writer) Write(s string) bool {
	d := w.data

	var read *future.Promise[string]
	written := false

	d.mu.Lock()
	// Ignore writes if either end of the pipe is closed!
	if d.writeEnd == open && d.readEnd == open {
		// Don't bother surfacing empty writes to the readers.
		if s != "" {
			if len(d.reads) == 0 {
				d.writes = append(d.writes, s)
			} else {
				read = d.reads[0]
				d.reads = d.reads[1:]
			}
		}
		written = true
	}
	d.mu.Unlock()

	// NOTE: We set the promise outside the critical section to avoid
	// triggering callbacks that try to reacquire the lock.
	if read != nil {
		read.Set(s)
	}

	return written
}

// Close shuts the write end, resolving all outstanding reads with
// end-of-file. Queued payloads remain readable. It reports whether this
// call closed the end.
func (w Writer) Close() bool {
	d := w.data

	var reads []*future.Promise[string]
	wasOpen := false

	d.mu.Lock()
	if d.writeEnd == open {
		// Extract all the pending reads so we can complete them.
		reads, d.reads = d.reads, nil

		d.writeEnd = closed
		wasOpen = true
	}
	d.mu.Unlock()

	// NOTE: We set the promises outside the critical section to avoid
	// triggering callbacks that try to reacquire the lock.
	for _, p := range reads {
		p.Set("") // End-of-file.
	}

	return wasOpen
}

// ReaderClosed returns a future that resolves exactly once, if and when
// the read end closes while the write end is still open.
func (w Writer) ReaderClosed() *future.Future[future.Nothing] {
	return w.data.readerClosed.Future()
}
