package output

import (
	"encoding/json"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
)

// SummariesToJSON serializes per-table p-value summaries.
func SummariesToJSON(summaries []models.Summary, pretty bool) ([]byte, error) {
	if summaries == nil {
		summaries = []models.Summary{}
	}
	if pretty {
		return json.MarshalIndent(summaries, "", "  ")
	}
	return json.Marshal(summaries)
}
