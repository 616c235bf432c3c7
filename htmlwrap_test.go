package dentdown

import (
	"context"
	"strings"
	"testing"
)

func TestWrapDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		title    string
		contains []string
	}{
		{
			name:     "fragment embedded in body",
			fragment: "<h1>Hi</h1>\n",
			title:    "Greeting",
			contains: []string{"<!DOCTYPE html>", "<title>Greeting</title>", "<h1>Hi</h1>"},
		},
		{
			name:     "empty title falls back",
			fragment: "<p>x</p>\n",
			title:    "",
			contains: []string{"<title>Document</title>"},
		},
		{
			name:     "title is escaped",
			fragment: "<p>x</p>\n",
			title:    "a <b> & c",
			contains: []string{"<title>a &lt;b> &amp; c</title>"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := wrapDocument(tt.fragment, tt.title)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("wrapDocument() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	inj := &cssInjection{}
	ctx := context.Background()

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "empty CSS returns HTML unchanged",
			html:     "<html><head></head></html>",
			css:      "",
			expected: "<html><head></head></html>",
		},
		{
			name:     "inserted before closing head",
			html:     "<html><head></head><body></body></html>",
			css:      "body{}",
			expected: "<html><head><style>body{}</style></head><body></body></html>",
		},
		{
			name:     "inserted after body when no head",
			html:     "<body class=\"x\"><p>t</p></body>",
			css:      "p{}",
			expected: "<body class=\"x\"><style>p{}</style><p>t</p></body>",
		},
		{
			name:     "prepended when neither head nor body",
			html:     "<p>t</p>",
			css:      "p{}",
			expected: "<style>p{}</style><p>t</p>",
		},
		{
			name:     "style breakout sanitized",
			html:     "<p>t</p>",
			css:      "p{}</style><script>",
			expected: `<style>p{}<\/style><script></style><p>t</p>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := inj.InjectCSS(ctx, tt.html, tt.css); got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectCSSCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inj := &cssInjection{}
	html := "<html><head></head></html>"
	if got := inj.InjectCSS(ctx, html, "body{}"); got != html {
		t.Errorf("InjectCSS() with cancelled context = %q, want untouched HTML", got)
	}
}
