package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTranscriptsSave(t *testing.T) {
	dir := t.TempDir()
	tr := NewTranscripts(dir, t.Logf)
	tr.now = func() time.Time { return time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC) }

	tr.SaveRequest("the request")
	tr.SaveResponse("the response")

	req, err := os.ReadFile(filepath.Join(dir, "requests", "request_2024-06-01-12-30-00.txt"))
	if err != nil || string(req) != "the request" {
		t.Errorf("request transcript = %q, %v", req, err)
	}
	resp, err := os.ReadFile(filepath.Join(dir, "responses", "response_2024-06-01-12-30-00.txt"))
	if err != nil || string(resp) != "the response" {
		t.Errorf("response transcript = %q, %v", resp, err)
	}
}

func TestTranscriptsDisabled(t *testing.T) {
	tr := NewTranscripts("", t.Logf)
	tr.SaveRequest("dropped") // must not panic or write anywhere
}

func TestTranscriptsBestEffort(t *testing.T) {
	dir := t.TempDir()
	// Occupy the requests path with a file so MkdirAll fails.
	if err := os.WriteFile(filepath.Join(dir, "requests"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var logged bool
	tr := NewTranscripts(dir, func(format string, args ...any) { logged = true })
	tr.SaveRequest("goes nowhere")

	if !logged {
		t.Error("failure was not reported through the log callback")
	}
}
