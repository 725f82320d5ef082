package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/asrcpq/mytableau/internal/uicolor"
)

// TextSink renders Events as an indented tree to w, styled with uicolor
// unless NoColor is set.
type TextSink struct {
	W       io.Writer
	NoColor bool
}

// Event implements Sink.
func (s *TextSink) Event(e Event) {
	indent := strings.Repeat("  ", e.Depth)
	switch e.Kind {
	case Assert:
		fmt.Fprintf(s.W, "%s%s\n", s.style(uicolor.Indent, indent), s.style(uicolor.Assert, e.Text))
	case Fork:
		fmt.Fprintf(s.W, "%s%s %s\n", s.style(uicolor.Indent, indent), s.style(uicolor.Fork, "fork"), s.style(uicolor.Fork, e.Text))
	case Closed:
		fmt.Fprintf(s.W, "%s%s %s\n", s.style(uicolor.Indent, indent), s.style(uicolor.Closed, "closed"), s.style(uicolor.Closed, e.Text))
	case Done:
		verdict := "open"
		style := uicolor.Open
		if e.Result {
			verdict = "closed"
			style = uicolor.Closed
		}
		fmt.Fprintf(s.W, "%s\n", s.style(style, "result: "+verdict))
	}
}

func (s *TextSink) style(st interface{ Render(...string) string }, text string) string {
	if s.NoColor {
		return text
	}
	return st.Render(text)
}
