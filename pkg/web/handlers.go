// Package web provides the HTTP surface for workflow validation.
package web

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/n8nlint/n8nlint/pkg/loader"
	"github.com/n8nlint/n8nlint/pkg/otelhelper"
	"github.com/n8nlint/n8nlint/pkg/reporter"
	"github.com/n8nlint/n8nlint/pkg/rules"
)

type APIHandlers struct {
	loader   *loader.Loader
	runner   *rules.Runner
	registry *rules.Registry
	tracer   trace.Tracer
}

func NewAPIHandlers(
	loader *loader.Loader,
	runner *rules.Runner,
	registry *rules.Registry,
	tracer trace.Tracer,
) *APIHandlers {
	return &APIHandlers{
		loader:   loader,
		runner:   runner,
		registry: registry,
		tracer:   tracer,
	}
}

// ValidateWorkflow validates the workflow document in the request body.
// Findings are data, not failures: a workflow full of warnings still gets a
// 200 with its report document. Only a malformed document (400) or a rule
// defect (500) is an error response.
func (h *APIHandlers) ValidateWorkflow(c fiber.Ctx) error {
	_, span := otelhelper.StartSpan(c.Context(), h.tracer, "validate")
	defer span.End()

	workflow, err := h.loader.Parse(c.Body())
	if err != nil {
		otelhelper.SetError(span, err)

		return badRequest(c, err.Error())
	}

	span.SetAttributes(attribute.String(otelhelper.WorkflowNameKey, workflow.DisplayName()))

	report, err := h.runner.Run(workflow, h.registry.Rules())
	if err != nil {
		var evalErr *rules.EvaluationError
		if errors.As(err, &evalErr) {
			otelhelper.SetError(span, err, attribute.String(otelhelper.RuleIDKey, evalErr.RuleID))
		} else {
			otelhelper.SetError(span, err)
		}

		return internalError(c, err)
	}

	span.SetAttributes(
		attribute.Int(otelhelper.IssueCountKey, len(report.Issues)),
		attribute.Bool(otelhelper.ValidKey, report.IsValid()),
	)

	return c.JSON(reporter.JSON(report))
}

// GetRules returns the registered rule ids in evaluation order.
func (h *APIHandlers) GetRules(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"rules": h.registry.IDs(),
	})
}
