package trace

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bearpet/internal/pet"
	"bearpet/internal/tuning"
)

var start = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newWriter(t *testing.T) *Writer {
	t.Helper()
	w, err := NewWriter(t.TempDir(), log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestJournalRoundTrip(t *testing.T) {
	w := newWriter(t)
	if !strings.HasSuffix(w.Path(), "trace-"+w.Run().String()+".jsonl.zst") {
		t.Errorf("Path() = %q does not carry the run id", w.Path())
	}

	tn := tuning.Default()
	tn.Poop.IntervalMin = time.Hour
	tn.Poop.IntervalMax = time.Hour
	tn.Behavior = tuning.Behavior{}
	tn.Dialogue.FlavorChance = 0
	sim := pet.New(pet.Config{
		Tuning:   tn,
		Rand:     pet.NewRand(1),
		Observer: w,
		Logger:   log.New(io.Discard, "", 0),
	}, start)
	sim.Advance(start.Add(10 * time.Second))
	sim.DebugKill()

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var got []Record
	err := ReadFile(w.Path(), func(r Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(got) != 11 {
		t.Fatalf("read %d records, want 11", len(got))
	}
	for i, r := range got[:10] {
		if r.Run != w.Run().String() {
			t.Errorf("record %d run = %q", i, r.Run)
		}
		if r.Tick != uint64(i+1) {
			t.Errorf("record %d tick = %d, want %d", i, r.Tick, i+1)
		}
		if !r.State.Alive {
			t.Errorf("record %d: pet not alive", i)
		}
	}
	last := got[10]
	if last.State.Alive || last.State.Reason != pet.ReasonDefault {
		t.Errorf("last record alive=%t reason=%s, want dead/default", last.State.Alive, last.State.Reason)
	}
	if got[9].State.Behavior != pet.Idle || got[9].State.Hunger != 100 {
		t.Errorf("record 10 state = %s", got[9].State)
	}
}

func TestWriteAfterClose(t *testing.T) {
	w := newWriter(t)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Write(Record{}); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Write() after Close = %v, want os.ErrClosed", err)
	}
	// The observer path swallows the error.
	w.ObserveTick(pet.Snapshot{})
}

func TestReadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonl.zst")
	if err := os.WriteFile(path, []byte("not zstd"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := ReadFile(path, func(Record) error { return nil })
	if err == nil {
		t.Error("ReadFile() on garbage = nil error")
	}
}

func TestSummarize(t *testing.T) {
	w := newWriter(t)
	tn := tuning.Default()
	tn.Poop.IntervalMin = time.Hour
	tn.Poop.IntervalMax = time.Hour
	tn.Behavior = tuning.Behavior{}
	tn.Dialogue.FlavorChance = 0
	sim := pet.New(pet.Config{
		Tuning:   tn,
		Rand:     pet.NewRand(1),
		Observer: w,
		Logger:   log.New(io.Discard, "", 0),
	}, start)
	sim.SpawnPoop()
	sim.Advance(start.Add(150 * time.Second))
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	sum, err := SummarizeFile(w.Path())
	if err != nil {
		t.Fatalf("SummarizeFile() error = %v", err)
	}
	if sum.Run != w.Run().String() {
		t.Errorf("Run = %q, want %q", sum.Run, w.Run())
	}
	if sum.Ticks != 150 {
		t.Errorf("Ticks = %d, want 150", sum.Ticks)
	}
	if got := sum.Lifetime(); got != 149*time.Second {
		t.Errorf("Lifetime() = %v, want 149s", got)
	}
	if sum.Nights != 1 || !sum.Final.Night {
		t.Errorf("Nights = %d, final night = %t; want one night still going", sum.Nights, sum.Final.Night)
	}
	if sum.MaxPoops != 1 {
		t.Errorf("MaxPoops = %d, want 1", sum.MaxPoops)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	w := newWriter(t)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := SummarizeFile(w.Path()); !errors.Is(err, ErrEmpty) {
		t.Errorf("SummarizeFile() on an empty journal = %v, want ErrEmpty", err)
	}
}
