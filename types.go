package dentdown

import "fmt"

// Dentdown source file extensions recognized by tooling.
const (
	Extension    = ".dd"
	ExtensionAlt = ".dentdown"
)

// MaxTitleLength bounds the document title injected into the HTML shell.
const MaxTitleLength = 200

// Input contains conversion parameters.
type Input struct {
	Markup     string // Dentdown content (required)
	Title      string // Document title, used when Standalone is set
	CSS        string // Custom CSS (optional, implies Standalone styling)
	Style      string // Name of a built-in stylesheet (optional)
	Standalone bool   // Wrap the fragment in a full HTML5 document
}

// Validate checks that required fields are present and within bounds.
func (in Input) Validate() error {
	if in.Markup == "" {
		return ErrEmptyMarkup
	}
	if len(in.Title) > MaxTitleLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrInvalidTitle, len(in.Title), MaxTitleLength)
	}
	return nil
}
