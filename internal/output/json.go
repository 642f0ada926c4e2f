package output

import (
	"encoding/json"
	"io"

	"github.com/samber/oops"
)

// JSON writes v indented, one value per call.
func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return oops.
			Code("RENDER_FAILED").
			Wrapf(err, "encoding json")
	}

	return nil
}
