package views

import (
	"encoding/json"
	"io"

	"github.com/smallworld/txstats/internal/constants"
)

// Render writes v to w as indented JSON when format is "json", otherwise it
// runs the table renderer.
func Render(w io.Writer, format string, v any, table func() error) error {
	if format == constants.FormatJSON {
		return RenderJSON(w, v)
	}
	return table()
}

func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
