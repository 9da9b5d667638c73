package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const timestampLayout = "2006-01-02-15-04-05"

// Transcripts persists raw request and response text to timestamped files.
// Best effort: failures are reported through the log callback only and
// never affect the operation that produced the text.
type Transcripts struct {
	dir string
	log LogFunc
	now func() time.Time
}

func NewTranscripts(dir string, log LogFunc) *Transcripts {
	if log == nil {
		log = nopLog
	}
	return &Transcripts{dir: dir, log: log, now: time.Now}
}

func (t *Transcripts) SaveRequest(text string) {
	t.save("requests", "request", text)
}

func (t *Transcripts) SaveResponse(text string) {
	t.save("responses", "response", text)
}

func (t *Transcripts) save(sub, kind, text string) {
	if t.dir == "" {
		return
	}
	dir := filepath.Join(t.dir, sub)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.log("save %s: %v", kind, err)
		return
	}
	name := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", kind, t.now().Format(timestampLayout)))
	if err := os.WriteFile(name, []byte(text), 0644); err != nil {
		t.log("save %s: %v", kind, err)
		return
	}
	t.log("%s saved to %s", kind, name)
}
