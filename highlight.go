package dentdown

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter renders the body of a fenced code block as an HTML fragment.
// lang is the fence's info string and may be empty.
type Highlighter interface {
	Highlight(code, lang string) (string, error)
}

// chromaHighlighter highlights code with chroma using inline styles, falling
// back to a plain escaped <pre> block when no lexer matches the language.
type chromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a Highlighter using the named chroma style.
// Unknown style names fall back to chroma's default style.
func NewChromaHighlighter(style string) Highlighter {
	return &chromaHighlighter{
		style:     styles.Get(style),
		formatter: chromahtml.New(chromahtml.WithClasses(false)),
	}
}

// Highlight tokenizes code with the lexer registered for lang. Without a
// usable lexer it degrades to plain escaped output rather than failing, so
// unknown languages still render.
func (h *chromaHighlighter) Highlight(code, lang string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return plainCodeBlock(code), nil
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// plainHighlighter emits escaped <pre><code> blocks without tokenization.
type plainHighlighter struct{}

// NewPlainHighlighter creates a Highlighter that never colorizes.
func NewPlainHighlighter() Highlighter {
	return plainHighlighter{}
}

func (plainHighlighter) Highlight(code, _ string) (string, error) {
	return plainCodeBlock(code), nil
}

func plainCodeBlock(code string) string {
	return "<pre><code>" + entityEscaper.Replace(code) + "</code></pre>"
}
