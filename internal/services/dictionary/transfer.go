package dictionary

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"decoder/internal/domain"
)

var errImportNotObject = errors.New("payload is not a JSON object")

// exportTimeLayout is YYYYMMDDHHMMSS.
const exportTimeLayout = "20060102150405"

// ExportFilename returns the export file name for t in local time.
func ExportFilename(t time.Time) string {
	return "decoder_dict_" + t.Local().Format(exportTimeLayout) + ".json"
}

// Export writes the merged dictionary as indented JSON.
func (s *Service) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Merged())
}

// DecodeImport parses an import payload into raw pairs for ImportEntries.
// Anything other than a JSON object fails with an ImportError.
func DecodeImport(data []byte) (map[any]any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &domain.ImportError{Err: err}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &domain.ImportError{Err: errImportNotObject}
	}
	raw := make(map[any]any, len(obj))
	for k, val := range obj {
		raw[k] = val
	}
	return raw, nil
}
