// internal/consolidator/handler.go
package consolidator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "bd-admin-hierarchy/internal/common/errors"
	"bd-admin-hierarchy/internal/common/logger"
	"bd-admin-hierarchy/internal/common/metrics"
	"bd-admin-hierarchy/internal/models"
)

const TaskType = "hierarchy-consolidate"

// Sink receives report lines.
type Sink interface {
	Print(lines ...string) error
}

type Handler struct {
	config  *Config
	logger  logger.Logger
	metrics *metrics.RunMetrics
	sink    Sink
}

func NewHandler(config *Config, log logger.Logger, m *metrics.RunMetrics, sink Sink) *Handler {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if m == nil {
		m = metrics.New()
	}
	return &Handler{
		config:  config,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
		metrics: m,
		sink:    sink,
	}
}

// Execute runs the whole pipeline: load, transform, report, serialize,
// write. Neither output file is written unless every earlier step has
// succeeded; each saved line is printed right after its own write.
func (h *Handler) Execute(ctx context.Context) (out *Output, err error) {
	started := time.Now()
	defer func() { h.finish(started, err) }()

	src, err := h.loadSources(ctx)
	if err != nil {
		return nil, err
	}

	data, err := Transform(src)
	if err != nil {
		return nil, err
	}

	report, err := BuildReport(data, h.config.Report)
	if err != nil {
		return nil, err
	}

	jsonText, moduleText, err := Serialize(data)
	if err != nil {
		return nil, err
	}

	if err := h.print(report.Summary...); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := writeOutput(h.config.ModuleOutputPath, moduleText); err != nil {
		return nil, err
	}
	h.logger.Info("module written", map[string]interface{}{
		"path":  h.config.ModuleOutputPath,
		"bytes": len(moduleText),
	})
	if err := h.print(moduleSavedLines(h.config.ModuleOutputPath)...); err != nil {
		return nil, err
	}

	if err := writeOutput(h.config.JSONOutputPath, jsonText); err != nil {
		return nil, err
	}
	h.logger.Info("json written", map[string]interface{}{
		"path":  h.config.JSONOutputPath,
		"bytes": len(jsonText),
	})
	if err := h.print(jsonSavedLines(h.config.JSONOutputPath)...); err != nil {
		return nil, err
	}
	if err := h.print(report.Samples...); err != nil {
		return nil, err
	}

	return &Output{
		Data:       data,
		JSONText:   jsonText,
		ModuleText: moduleText,
		Report:     report,
		Counts:     data.Counts(),
	}, nil
}

func (h *Handler) loadSources(ctx context.Context) (*Sources, error) {
	src := &Sources{}
	for _, c := range models.Collections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := h.config.Inputs.Path(c)
		records, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", c, err)
		}
		src.set(c, records)
		h.metrics.RecordLoaded(string(c), len(records))
		h.logger.Debug("loaded collection", map[string]interface{}{
			"collection": string(c),
			"path":       path,
			"records":    len(records),
		})
	}
	return src, nil
}

func (h *Handler) print(lines ...string) error {
	if h.sink == nil {
		return nil
	}
	if err := h.sink.Print(lines...); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (h *Handler) finish(started time.Time, err error) {
	code := ""
	if err != nil {
		code = string(apperrors.AsStandardError(err).Code)
	}
	h.metrics.Finish(started, code)

	if werr := h.metrics.WriteTextfile(h.config.MetricsTextfile); werr != nil {
		h.logger.Warn("failed to write metrics textfile", map[string]interface{}{
			"path":  h.config.MetricsTextfile,
			"error": werr.Error(),
		})
	}

	if err == nil {
		h.logger.Info("consolidation completed", map[string]interface{}{
			"duration": time.Since(started).String(),
		})
	}
}

// Verify re-reads both emitted files and checks that the module embeds
// exactly the JSON document and that the document has the expected shape.
func (h *Handler) Verify(ctx context.Context) (*VerifyOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jsonRaw, err := readFile(h.config.JSONOutputPath)
	if err != nil {
		return nil, err
	}
	moduleRaw, err := readFile(h.config.ModuleOutputPath)
	if err != nil {
		return nil, err
	}

	embedded, err := ExtractModuleJSON(string(moduleRaw))
	if err != nil {
		return nil, apperrors.NewVerificationFailedError(fmt.Sprintf("%s: %v", h.config.ModuleOutputPath, err))
	}
	if embedded != string(jsonRaw) {
		return nil, apperrors.NewVerificationFailedError("module JSON differs from " + h.config.JSONOutputPath)
	}

	dec := json.NewDecoder(bytes.NewReader(jsonRaw))
	dec.DisallowUnknownFields()
	var data models.AdministrativeData
	if err := dec.Decode(&data); err != nil {
		return nil, apperrors.NewParseError(h.config.JSONOutputPath, "document does not match the hierarchy shape", err)
	}

	counts := data.Counts()
	h.logger.Info("outputs verified", map[string]interface{}{
		"divisions": counts[models.CollectionDivisions],
		"districts": counts[models.CollectionDistricts],
		"upazilas":  counts[models.CollectionUpazilas],
		"thanas":    counts[models.CollectionThanas],
	})
	return &VerifyOutput{Counts: counts}, nil
}
