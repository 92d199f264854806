package cli

import (
	"fmt"
	"io"
	"strings"

	"perfumeHelper/pkg/perfume"
)

const (
	Banner   = "=== Perfume Weather Helper ==="
	Subtitle = "Find which perfume style to wear in current weather (male/female)."
)

func Render(s perfume.Suggestion) string {
	b := &strings.Builder{}

	fmt.Fprintf(b, "Weather category: %s\n", s.Weather)
	fmt.Fprintln(b, "Recommended perfumes:")
	for i, r := range s.Recommendations {
		fmt.Fprintf(b, "%d. %s\n", i+1, r.Name)
		fmt.Fprintf(b, "   Notes : %s\n", r.Notes)
		fmt.Fprintf(b, "   Why   : %s\n", r.Reason)
	}

	return b.String()
}

func RenderInputError(w io.Writer, err error) {
	fmt.Fprintf(w, "Input error: %v\n", err)
}
