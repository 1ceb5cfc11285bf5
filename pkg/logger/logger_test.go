package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestGetBeforeInitIsDisabled(t *testing.T) {
	reset()
	if Get().GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger before Init")
	}
}

func TestComponentFields(t *testing.T) {
	reset()
	defer reset()

	var buf bytes.Buffer
	Init(Options{Level: "info", Service: "inventory-api", Output: &buf})
	l := Component("orders")
	l.Info().Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if line["service"] != "inventory-api" || line["component"] != "orders" {
		t.Fatalf("unexpected fields: %v", line)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	reset()
	defer reset()

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	Init(Options{Output: &second})
	l := Get()
	l.Info().Msg("x")

	if first.Len() == 0 || second.Len() != 0 {
		t.Fatalf("second Init should not replace the logger")
	}
}

// reset discards the process logger between tests.
func reset() {
	mu.Lock()
	instance = nil
	mu.Unlock()
}
