package eventlog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"leagueofmolts.ai/internal/protocol"
)

func readBack(t *testing.T, path string) []protocol.Event {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()

	var out []protocol.Event
	sc := bufio.NewScanner(dec)
	for sc.Scan() {
		var e protocol.Event
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("line %d: %v", len(out)+1, err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "m-roundtrip")
	if err != nil {
		t.Fatal(err)
	}

	events := []protocol.Event{
		{"type": protocol.EventMatchStart, "tick": float64(0)},
		{"type": protocol.EventChampionKill, "killer_id": "C1", "victim_id": "C4"},
		{"type": protocol.EventMatchEnd, "winner": "blue"},
	}
	for _, e := range events {
		if err := w.WriteEvent(e); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got := readBack(t, filepath.Join(dir, "m-roundtrip.jsonl.zst"))
	if len(got) != len(events) {
		t.Fatalf("read %d events, wrote %d", len(got), len(events))
	}
	for i, e := range events {
		for k, v := range e {
			if got[i][k] != v {
				t.Fatalf("event %d key %q = %v, want %v", i, k, got[i][k], v)
			}
		}
	}
}

func TestWriteAfterClose(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "m-closed")
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteEvent(protocol.Event{"type": "x"}); err == nil {
		t.Fatalf("write after close succeeded")
	}
}

func TestNewWriterCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "a", "b")
	w, err := NewWriter(base, "m-nested")
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if _, err := os.Stat(filepath.Join(base, "m-nested.jsonl.zst")); err != nil {
		t.Fatal(err)
	}
}
