// internal/consolidator/serialize.go
package consolidator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "bd-admin-hierarchy/internal/common/errors"
	"bd-admin-hierarchy/internal/models"
)

// ExportName is the constant the JavaScript module exports.
const ExportName = "bangladeshAdministrativeData"

// ModuleHeader precedes the export statement in the emitted module.
const ModuleHeader = "// Bangladesh Administrative Hierarchy\n" +
	"// Generated from divisions, districts, upazilas and thanas reference data\n"

const (
	exportPrefix = "export const " + ExportName + " = "
	exportSuffix = ";\n"
)

// encodeJSON renders v with two-space indentation, leaving non-ASCII and
// HTML characters unescaped. No trailing newline is emitted.
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Serialize returns the JSON document and the JavaScript module embedding it.
func Serialize(data *models.AdministrativeData) (jsonText, moduleText string, err error) {
	raw, err := encodeJSON(data)
	if err != nil {
		return "", "", apperrors.NewSerializationFailedError(err)
	}
	jsonText = string(raw)
	return jsonText, BuildModule(jsonText), nil
}

// BuildModule wraps jsonText in the exported constant declaration.
func BuildModule(jsonText string) string {
	return ModuleHeader + exportPrefix + jsonText + exportSuffix
}

// ExtractModuleJSON strips the leading comment lines and the export
// wrapper from moduleText, returning the embedded JSON text.
func ExtractModuleJSON(moduleText string) (string, error) {
	body := moduleText
	for strings.HasPrefix(body, "//") {
		nl := strings.IndexByte(body, '\n')
		if nl < 0 {
			return "", fmt.Errorf("module has no export statement")
		}
		body = body[nl+1:]
	}
	if !strings.HasPrefix(body, exportPrefix) {
		return "", fmt.Errorf("module does not export %s", ExportName)
	}
	body = strings.TrimPrefix(body, exportPrefix)

	trimmed := strings.TrimRight(body, "\r\n")
	if !strings.HasSuffix(trimmed, ";") {
		return "", fmt.Errorf("export statement is not terminated")
	}
	return strings.TrimSuffix(trimmed, ";"), nil
}

// writeOutput replaces path with data, creating the parent directory.
func writeOutput(path, data string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewWriteFailedError(path, err)
		}
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return apperrors.NewWriteFailedError(path, err)
	}
	return nil
}
