// Package dentdown renders dentdown, a lightweight indentation-based markup
// language, into nested and indented HTML.
//
// # Quick Start
//
// Create a service and convert markup:
//
//	svc := dentdown.New()
//	html, err := svc.Convert(ctx, dentdown.Input{
//	    Markup: "# Hello\n\n- One item\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(html)
//
// By default Convert returns an HTML fragment. Set Input.Standalone (or pass
// CSS/Style) to wrap the fragment in a complete HTML5 document.
//
// # Conversion Pipeline
//
//  1. Preprocessing (line-ending normalization, leading-tab expansion)
//  2. Line dispatch against the rule catalogue, driven by the indentation
//     scope stack
//  3. Inline span substitution on leaf text (escaping, emphasis, links)
//  4. Serialization of the write log into nested HTML
//
// Fenced code blocks are highlighted with chroma.
//
// # Custom Rules
//
// The rule catalogue and the span chain are configuration, registered once
// and shared read-only:
//
//	rules := dentdown.NewRuleSet()
//	rules.On(`^:: (.+)$`, func(p *dentdown.Parser, m []string) error {
//	    p.Write(m[1], "aside")
//	    return nil
//	})
//	svc := dentdown.New(dentdown.WithRules(rules))
//
// Rules are tried in registration order; the first match wins. Lines matching
// no rule are dropped.
//
// # Concurrency
//
// A Service holds only immutable configuration. Each Convert call runs an
// independent session, so a single Service may be shared across goroutines.
package dentdown
