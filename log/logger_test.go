package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	origLevel := GetLevel()
	defer SetLevel(origLevel)

	logger := New("log-test")

	SetLevel(Notice)
	logger.Info("hidden message")
	logger.Noticef("visible %s", "message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Fatalf("expected info message to be filtered at notice level; got %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "[log-test]") {
		t.Fatalf("expected notice message with module name; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("debug %d", 42)
	if !strings.Contains(buf.String(), "debug 42") {
		t.Fatalf("expected debug message at debug level; got %q", buf.String())
	}
}

func TestGetLevel(t *testing.T) {
	origLevel := GetLevel()
	defer SetLevel(origLevel)

	for _, level := range []Level{Debug, Info, Notice, Warning, Error} {
		SetLevel(level)
		if got := GetLevel(); got != level {
			t.Fatalf("expected level %d; got %d", level, got)
		}
	}
}
