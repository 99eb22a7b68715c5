// Package loader reads n8n workflow JSON documents from disk or raw bytes
// and produces the in-memory workflow model the rule engine consumes.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/n8nlint/n8nlint/pkg/models"
	"github.com/xeipuuv/gojsonschema"
)

var (
	ErrNotFound  = errors.New("file not found")
	ErrNotAFile  = errors.New("not a file")
	ErrExtension = errors.New("invalid file extension (expected .json)")
	ErrNotObject = errors.New("workflow must be a JSON object")
)

// SchemaError reports structural violations of the workflow document shape.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("workflow schema violations: %s", strings.Join(e.Violations, "; "))
}

// workflowSchema is the minimal structural contract the loader enforces
// before decoding: the document is an object, nodes (when present) is an
// array of objects carrying id and type, and connections/settings are
// objects. Everything beyond this shape is the rule engine's business.
var workflowSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{"type": "string"},
		"nodes": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":         map[string]any{"type": "string"},
					"name":       map[string]any{"type": "string"},
					"type":       map[string]any{"type": "string"},
					"parameters": map[string]any{"type": "object"},
				},
				"required": []string{"id", "type"},
			},
		},
		"connections": map[string]any{"type": "object"},
		"settings":    map[string]any{"type": "object"},
	},
}

// Loader parses workflow documents. Safe for reuse across files.
type Loader struct {
	logger   *slog.Logger
	schema   gojsonschema.JSONLoader
	validate *validator.Validate
}

// New creates a loader.
func New(logger *slog.Logger) *Loader {
	return &Loader{
		logger:   logger.With("module", "loader"),
		schema:   gojsonschema.NewGoLoader(workflowSchema),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads and parses the workflow file at path.
func (l *Loader) Load(path string) (*models.Workflow, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return nil, fmt.Errorf("%w: %s", ErrExtension, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	l.logger.Debug("Loaded workflow file", "path", path, "bytes", len(data))

	return l.Parse(data)
}

// Parse decodes a raw workflow document. The document must be a JSON object
// matching the loader's structural schema; the decoded workflow's nodes must
// carry non-empty id and type.
func (l *Loader) Parse(data []byte) (*models.Workflow, error) {
	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if _, ok := document.(map[string]any); !ok {
		return nil, ErrNotObject
	}

	if err := l.checkSchema(document); err != nil {
		return nil, err
	}

	var workflow models.Workflow
	if err := json.Unmarshal(data, &workflow); err != nil {
		return nil, fmt.Errorf("invalid workflow document: %w", err)
	}

	if err := l.validate.Struct(&workflow); err != nil {
		return nil, fmt.Errorf("invalid workflow document: %w", err)
	}

	return &workflow, nil
}

func (l *Loader) checkSchema(document any) error {
	result, err := gojsonschema.Validate(l.schema, gojsonschema.NewGoLoader(document))
	if err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}

		return &SchemaError{Violations: violations}
	}

	return nil
}

// Result pairs one input path with its load outcome.
type Result struct {
	Path     string
	Workflow *models.Workflow
	Err      error
}

// LoadAll loads every path, collecting per-file outcomes instead of failing
// on the first bad file.
func (l *Loader) LoadAll(paths []string) []Result {
	results := make([]Result, 0, len(paths))

	for _, path := range paths {
		workflow, err := l.Load(path)
		results = append(results, Result{Path: path, Workflow: workflow, Err: err})
	}

	return results
}
