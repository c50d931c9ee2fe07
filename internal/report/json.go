package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes files as an indented JSON array, one object per file.
func WriteJSON(w io.Writer, files []File) error {
	resp := make([]resultResponse, len(files))
	for i, f := range files {
		resp[i] = toResponse(f)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	return nil
}
