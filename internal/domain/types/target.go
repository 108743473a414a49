package types

import "golang.org/x/net/html"

// Program is a pure function handed to an execution target. Browser targets
// run JS inside the page; document targets run Native against the parsed tree.
type Program struct {
	Name   string
	JS     string
	Native func(root *html.Node, args []any) error
}

// PageState is the per-target state tracked by the page applier.
type PageState int

const (
	PageUnmodified PageState = iota
	PageSubstituted
)

// String returns the string form of the state.
func (s PageState) String() string {
	switch s {
	case PageSubstituted:
		return "substituted"
	default:
		return "unmodified"
	}
}
