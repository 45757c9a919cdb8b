// Package markup turns post bodies written in markdown into safe HTML.
package markup

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Mode selects how post bodies are rendered.
type Mode string

const (
	// Structural parses markdown: headings, lists, code, quotes, tables.
	Structural Mode = "structural"
	// LineBreaks only escapes the text and turns newlines into <br>.
	LineBreaks Mode = "linebreaks"
)

// ParseMode validates a configured mode; empty means Structural.
func ParseMode(raw string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(raw))); m {
	case "", Structural:
		return Structural, nil
	case LineBreaks:
		return LineBreaks, nil
	default:
		return "", fmt.Errorf("unknown markup mode %q", raw)
	}
}

var codeClass = regexp.MustCompile(`^language-[\w+#.-]+$`)

// Renderer is safe for concurrent use.
type Renderer struct {
	mode   Mode
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New(mode Mode) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(codeClass).OnElements("code")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	if mode == "" {
		mode = Structural
	}
	return &Renderer{mode: mode, md: md, policy: policy}
}

func (r *Renderer) Mode() Mode { return r.mode }

// Render converts body according to the renderer's mode.
func (r *Renderer) Render(body string) (template.HTML, error) {
	if r.mode == LineBreaks {
		return RenderLineBreaks(body), nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf, parser.WithContext(newParseContext())); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// RenderLineBreaks is the plain-text fallback: escape and keep line breaks.
func RenderLineBreaks(body string) template.HTML {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	escaped := html.EscapeString(body)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>\n"))
}
