package sanitizer

import "github.com/microcosm-cc/bluemonday"

// HTMLStripperer strips markup from untrusted text. Cast bodies arrive from
// an external network and are rendered back into frame pages, so anything
// that looks like HTML is removed before it becomes a market question.
type HTMLStripperer interface {
	StripHTML(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

// NewHTMLStripper returns a new instance of the strict bluemonday policy
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

func (hs *HTMLStripper) StripHTML(s string) string {
	return hs.bm.Sanitize(s)
}
