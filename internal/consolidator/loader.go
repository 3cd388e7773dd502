// internal/consolidator/loader.go
package consolidator

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	apperrors "bd-admin-hierarchy/internal/common/errors"
	"bd-admin-hierarchy/internal/common/validation"
	"bd-admin-hierarchy/internal/models"
)

// Load reads a UTF-8 JSON document that must be a top-level array of
// objects. Fields of the objects are not inspected here.
func Load(path string) ([]models.SourceRecord, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(raw) {
		return nil, apperrors.NewParseError(path, "document is not valid UTF-8", nil)
	}

	result, err := validation.ValidateRecordArray(raw)
	if err != nil {
		return nil, apperrors.NewParseError(path, "document is not valid JSON", err)
	}
	if !result.Valid {
		return nil, apperrors.NewParseError(path, "expected an array of objects: "+result.String(), nil)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var records []models.SourceRecord
	if err := dec.Decode(&records); err != nil {
		return nil, apperrors.NewParseError(path, "document is not valid JSON", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, apperrors.NewParseError(path, "unexpected data after top-level array", err)
	}
	if records == nil {
		records = []models.SourceRecord{}
	}
	return records, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewFileNotFoundError(path, err)
		}
		return nil, apperrors.NewFileReadFailedError(path, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, apperrors.NewFileReadFailedError(path, err)
	}
	return raw, nil
}
