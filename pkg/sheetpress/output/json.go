package output

import (
	"encoding/json"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// ToJSON serializes the encoding as JSON.
func ToJSON(e *models.Encoding, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(e, "", "  ")
	}
	return json.Marshal(e)
}
