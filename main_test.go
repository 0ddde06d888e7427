package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bearpet/internal/tuning"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			want: options{},
		},
		{
			name: "everything",
			args: []string{"-config", "t.yaml", "-seed", "42", "-log", "bear.log", "-trace", "runs"},
			want: options{config: "t.yaml", seed: 42, log: "bear.log", trace: "runs"},
		},
		{
			name: "replay",
			args: []string{"-replay", "runs/trace.jsonl.zst"},
			want: options{replay: "runs/trace.jsonl.zst"},
		},
		{
			name:    "bad seed",
			args:    []string{"-seed", "lots"},
			wantErr: true,
		},
		{
			name:    "stray argument",
			args:    []string{"feed"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseFlags(%v) = %+v, want error", tt.args, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags(%v) error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("parseFlags(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestLoadTuning(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := loadTuning("")
	if err != nil {
		t.Fatalf("loadTuning() without a default file: %v", err)
	}
	if got != tuning.Default() {
		t.Error("missing default file did not give the default tuning")
	}

	if _, err := loadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("an explicit missing config should be an error")
	}

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("decay:\n  hunger_every: 30s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = loadTuning(path)
	if err != nil {
		t.Fatalf("loadTuning(%q) error = %v", path, err)
	}
	if got.Decay.HungerEvery != 30*time.Second {
		t.Errorf("HungerEvery = %v, want 30s", got.Decay.HungerEvery)
	}
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	})

	path := filepath.Join(t.TempDir(), "bear.log")
	closer, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	log.Printf("Pet pooped (%d on the floor)", 1)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "bearpet") || !strings.Contains(string(data), "Pet pooped (1 on the floor)") {
		t.Errorf("log file = %q", data)
	}

	closer, err = setupLogging("")
	if err != nil {
		t.Fatalf("setupLogging(\"\") error = %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("discard closer: %v", err)
	}
}

func TestReplayMissingJournal(t *testing.T) {
	err := run(options{replay: filepath.Join(t.TempDir(), "nope.jsonl.zst")})
	if err == nil {
		t.Error("replaying a missing journal should fail")
	}
}
