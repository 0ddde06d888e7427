// Package trace journals every simulation tick as zstd-compressed JSON lines.
package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"bearpet/internal/pet"
)

// Record is one line of the journal.
type Record struct {
	Run string `json:"run"`
	pet.Snapshot
}

// Writer appends one Record per tick to <dir>/trace-<run>.jsonl.zst. It
// implements pet.TickObserver.
type Writer struct {
	run  uuid.UUID
	path string
	log  *log.Logger

	reported bool

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
	err error
}

// NewWriter creates the journal file for a fresh run id.
func NewWriter(dir string, logger *log.Logger) (*Writer, error) {
	if logger == nil {
		logger = log.Default()
	}
	run := uuid.New()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("trace-%s.jsonl.zst", run))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("trace: %w", err)
	}
	return &Writer{
		run:  run,
		path: path,
		log:  logger,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Run returns the run id stamped on every record.
func (w *Writer) Run() uuid.UUID { return w.run }

// Path returns the journal file.
func (w *Writer) Path() string { return w.path }

// ObserveTick implements pet.TickObserver. The first write error is kept and
// later ticks are dropped.
func (w *Writer) ObserveTick(s pet.Snapshot) {
	if err := w.Write(Record{Run: w.run.String(), Snapshot: s}); err != nil && !w.reported {
		w.reported = true
		w.log.Printf("Error writing trace: %v", err)
	}
}

// Write appends one record.
func (w *Writer) Write(r Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	if w.w == nil {
		return os.ErrClosed
	}

	b, err := json.Marshal(r)
	if err != nil {
		w.err = err
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		w.err = err
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Close flushes and closes the journal.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.w != nil {
		err = w.w.Flush()
		w.w = nil
	}
	if w.enc != nil {
		if cerr := w.enc.Close(); err == nil {
			err = cerr
		}
		w.enc = nil
	}
	if w.f != nil {
		if cerr := w.f.Close(); err == nil {
			err = cerr
		}
		w.f = nil
	}
	return err
}

// Read decodes a journal stream, calling fn for every record in order.
func Read(r io.Reader, fn func(Record) error) error {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	for sc.Scan() {
		var rec Record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return fmt.Errorf("trace: %w", err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return sc.Err()
}

// ReadFile is Read on the file at path.
func ReadFile(path string, fn func(Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(f, fn)
}
