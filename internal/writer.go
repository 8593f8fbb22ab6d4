package internal

import (
	"encoding/json"
	"io"

	"github.com/consigcody94/repo-doctor/schema"
)

// writeJSONReport serializes the report with indentation. The JSON shape is
// the read-back format for the report command, so field stability matters
// more than compactness here.
func writeJSONReport(w io.Writer, health *schema.RepositoryHealth) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(health)
}
