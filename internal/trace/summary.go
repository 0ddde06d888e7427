package trace

import (
	"errors"
	"io"
	"os"
	"time"

	"bearpet/internal/pet"
)

// ErrEmpty is returned when a journal holds no records.
var ErrEmpty = errors.New("trace: empty journal")

// Summary condenses one journal.
type Summary struct {
	Run      string
	Ticks    uint64
	Start    time.Time
	End      time.Time
	Final    pet.State
	MaxPoops int
	Nights   int
	SickFor  uint64 // ticks spent sick
}

// Lifetime is how long the journal covers.
func (s Summary) Lifetime() time.Duration { return s.End.Sub(s.Start) }

// Summarize reads a journal stream and condenses it.
func Summarize(r io.Reader) (Summary, error) {
	var (
		sum   Summary
		seen  bool
		night bool
	)
	err := Read(r, func(rec Record) error {
		if !seen {
			sum.Run = rec.Run
			sum.Start = rec.At
			seen = true
		}
		sum.Ticks = max(sum.Ticks, rec.Tick)
		sum.End = rec.At
		sum.Final = rec.State
		sum.MaxPoops = max(sum.MaxPoops, rec.State.PoopCount)
		if rec.State.Night && !night {
			sum.Nights++
		}
		night = rec.State.Night
		if rec.State.Sick {
			sum.SickFor++
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	if !seen {
		return Summary{}, ErrEmpty
	}
	return sum, nil
}

// SummarizeFile is Summarize on the file at path.
func SummarizeFile(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()
	return Summarize(f)
}
