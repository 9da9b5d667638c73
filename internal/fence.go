package internal

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// CommentStyle selects how a path is embedded in the first line of a block.
type CommentStyle int

const (
	CommentLine  CommentStyle = iota // // src/App.js
	CommentBlock                     // /* src/styles.css */
	CommentHash                      // # fallback for unknown extensions
)

// Language binds a file extension to its fence tag and comment syntax.
type Language struct {
	Ext   string
	Tag   string
	Style CommentStyle
}

const DefaultRoot = "src"

func DefaultLanguages() []Language {
	return []Language{
		{Ext: ".js", Tag: "javascript", Style: CommentLine},
		{Ext: ".ts", Tag: "typescript", Style: CommentLine},
		{Ext: ".dart", Tag: "dart", Style: CommentLine},
		{Ext: ".css", Tag: "css", Style: CommentBlock},
	}
}

// Codec maps between asset paths and their in-band comment representation,
// and renders/strips the fenced-block wire format. All path, extension, and
// comment-style rules live in the Language table passed to NewCodec; adding
// a source type is a data change.
type Codec struct {
	root  string
	byExt map[string]Language
	line  *regexp.Regexp
	block *regexp.Regexp
}

func NewCodec(root string, langs []Language) *Codec {
	c := &Codec{
		root:  root,
		byExt: make(map[string]Language, len(langs)),
	}

	var lineExts, blockExts []string
	for _, l := range langs {
		c.byExt[l.Ext] = l
		switch l.Style {
		case CommentLine:
			lineExts = append(lineExts, regexp.QuoteMeta(strings.TrimPrefix(l.Ext, ".")))
		case CommentBlock:
			blockExts = append(blockExts, regexp.QuoteMeta(strings.TrimPrefix(l.Ext, ".")))
		}
	}

	path := regexp.QuoteMeta(root) + `/[\w/-]+\.`
	if len(lineExts) > 0 {
		c.line = regexp.MustCompile(`^//\s*(` + path + `(?:` + strings.Join(lineExts, "|") + `))`)
	}
	if len(blockExts) > 0 {
		c.block = regexp.MustCompile(`^/\*\s*(` + path + `(?:` + strings.Join(blockExts, "|") + `))\s*\*/`)
	}

	return c
}

func DefaultCodec() *Codec {
	return NewCodec(DefaultRoot, DefaultLanguages())
}

func (c *Codec) Root() string {
	return c.root
}

// RecognizePath reports whether line is a path-bearing comment for one of
// the configured languages, and if so returns the path. It is pure; the
// recognizer is used both to classify the first line of a block and to
// decide where a body begins.
func (c *Codec) RecognizePath(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if c.line != nil {
		if m := c.line.FindStringSubmatch(s); m != nil {
			return m[1], true
		}
	}
	if c.block != nil {
		if m := c.block.FindStringSubmatch(s); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// LanguageTag returns the fence tag for the path's extension, or "" when
// the extension is unknown.
func (c *Codec) LanguageTag(path string) string {
	return c.byExt[filepath.Ext(path)].Tag
}

// Comment renders the canonical path comment line, trailing newline
// included. Unknown extensions fall back to a hash comment.
func (c *Codec) Comment(path string) string {
	lang, ok := c.byExt[filepath.Ext(path)]
	if !ok {
		return fmt.Sprintf("# %s\n", path)
	}
	if lang.Style == CommentBlock {
		return fmt.Sprintf("/* %s */\n", path)
	}
	return fmt.Sprintf("// %s\n", path)
}

// ExtractBody strips the leading run of blank and path-comment lines from
// raw block text. The first line that is neither starts the body; from
// there every line is kept verbatim, interior blanks included. Input made
// up entirely of blank/comment lines yields "".
func (c *Codec) ExtractBody(raw string) string {
	lines := strings.Split(raw, "\n")
	start := len(lines)
	for i, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if _, ok := c.RecognizePath(s); ok {
			continue
		}
		start = i
		break
	}
	return strings.Join(lines[start:], "\n")
}

// NewAsset builds an Asset whose body has been extract-normalized.
func (c *Codec) NewAsset(path, raw string) Asset {
	return Asset{Path: path, Body: c.ExtractBody(raw)}
}

// Render produces the fenced-block wire format for an asset: opening fence
// with the language tag, the path comment, the body, closing fence. This is
// the exact shape sent to and parsed back from the text-generation service.
func (c *Codec) Render(a Asset) string {
	return fmt.Sprintf("```%s\n%s%s\n```", c.LanguageTag(a.Path), c.Comment(a.Path), a.Body)
}
