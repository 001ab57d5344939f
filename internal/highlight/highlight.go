// Package highlight renders source lines with chroma for the terminal and
// for HTML. Any highlighter failure falls back to escaped plain text.
package highlight

import (
	"html"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
)

const maxCacheEntries = 8192

type cacheKey struct {
	style   string
	path    string
	content string
}

// Highlighter highlights single lines with a named chroma style. Results are
// cached, so rendering the same line twice is cheap and identical.
type Highlighter struct {
	mu        sync.Mutex
	styleName string
	style     *chroma.Style
	cache     map[cacheKey]string
	policy    *bluemonday.Policy
	html      *chromahtml.Formatter
}

// New creates a highlighter using the named chroma style. Unknown styles
// use chroma's fallback style.
func New(styleName string) *Highlighter {
	policy := bluemonday.NewPolicy()
	policy.AllowAttrs("class").OnElements("span")

	h := &Highlighter{
		cache:  make(map[cacheKey]string),
		policy: policy,
		html:   chromahtml.New(chromahtml.WithClasses(true), chromahtml.PreventSurroundingPre(true)),
	}
	h.SetStyle(styleName)
	return h
}

// SetStyle switches the chroma style.
func (h *Highlighter) SetStyle(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	style := styles.Get(name)
	if style == nil {
		style = styles.Fallback
	}
	h.styleName = name
	h.style = style
}

// StyleName returns the configured style name.
func (h *Highlighter) StyleName() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.styleName
}

// ANSI highlights a line for a 256-color terminal.
func (h *Highlighter) ANSI(content, path string) string {
	safe := TerminalLine(content)
	if safe == "" {
		return ""
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	key := cacheKey{style: h.styleName, path: path, content: safe}
	if out, ok := h.cache[key]; ok {
		return out
	}

	out := safe
	if formatted, ok := h.format(formatters.TTY256, safe, path); ok {
		out = formatted
	}
	h.store(key, out)
	return out
}

// HTML highlights a line as class-annotated spans. The output contains only
// escaped text and span elements.
func (h *Highlighter) HTML(content, path string) string {
	if content == "" {
		return ""
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	formatted, ok := h.format(h.html, content, path)
	if !ok {
		return html.EscapeString(content)
	}
	return h.policy.Sanitize(formatted)
}

// WriteCSS writes the stylesheet for HTML output in the active style.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.html.WriteCSS(w, h.style)
}

func (h *Highlighter) format(f chroma.Formatter, content, path string) (string, bool) {
	lexer := lexerFor(path)
	if lexer == nil {
		return "", false
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return "", false
	}

	var b strings.Builder
	if err := f.Format(&b, h.style, iterator); err != nil {
		return "", false
	}
	return strings.TrimRight(b.String(), "\n"), true
}

func (h *Highlighter) store(key cacheKey, value string) {
	if len(h.cache) >= maxCacheEntries {
		h.cache = make(map[cacheKey]string)
	}
	h.cache[key] = value
}

func lexerFor(path string) chroma.Lexer {
	lang := Language(path)
	if lang == PlainText {
		return nil
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil
	}
	return chroma.Coalesce(lexer)
}
