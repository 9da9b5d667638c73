package internal

import (
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)```[a-z]*\n(.*?)\n```")

// Extractor converts fenced blocks embedded in free-form response text into
// assets. Extraction is best effort: blocks whose first non-blank line is
// not a recognized path comment are dropped with a warning, never an error,
// because the remote service routinely mixes in prose and comment-free
// snippets.
type Extractor struct {
	codec *Codec
	log   LogFunc
}

func NewExtractor(codec *Codec, log LogFunc) *Extractor {
	if log == nil {
		log = nopLog
	}
	return &Extractor{codec: codec, log: log}
}

// Extract returns one asset per fenced block whose first non-blank line
// passes path recognition. The full block text goes through body
// extraction, so the comment line and any leading blanks are stripped.
func (e *Extractor) Extract(response string) *Collection {
	assets := NewCollection()

	for i, m := range fencePattern.FindAllStringSubmatch(response, -1) {
		block := m[1]

		first := ""
		for _, line := range strings.Split(block, "\n") {
			if s := strings.TrimSpace(line); s != "" {
				first = s
				break
			}
		}
		if first == "" {
			e.log("code block %d: empty, skipping", i+1)
			continue
		}

		path, ok := e.codec.RecognizePath(first)
		if !ok {
			e.log("code block %d: no asset path comment in first line, skipping", i+1)
			continue
		}

		assets.AddOrUpdate(e.codec.NewAsset(path, block))
	}

	return assets
}
