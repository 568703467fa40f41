package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"report-service/internal/apiutil"
	"report-service/internal/services"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService *services.ReportService
	templateBase  string
}

func NewReportHandler(reportService *services.ReportService, templateBase string) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		templateBase:  templateBase,
	}
}

func (h *ReportHandler) Register(app *fiber.App) {
	protectedGr := app.Group("report/protected/api/v1")

	applicationGroup := protectedGr.Group("/applications")
	applicationGroup.Get("/:id/status-document", h.GetStatusDocument)              // GET  /applications/:id/status-document
	applicationGroup.Post("/:id/status-document/archive", h.ArchiveStatusDocument) // POST /applications/:id/status-document/archive
}

// GetStatusDocument renders the status document for an application and
// streams the PDF bytes back to the caller.
func (h *ReportHandler) GetStatusDocument(c fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			apiutil.CreateErrorResponse("INVALID_REQUEST", "Invalid application ID: "+err.Error()))
	}

	pdf, err := h.reportService.Generate(c.Context(), applicationID, h.baseURI(c))
	if err != nil {
		return h.mapGenerateError(c, err)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="application_status_%s.pdf"`, applicationID))
	return c.Status(http.StatusOK).Send(pdf)
}

// ArchiveStatusDocument renders the status document, stores it in object
// storage and returns the stored object name.
func (h *ReportHandler) ArchiveStatusDocument(c fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			apiutil.CreateErrorResponse("INVALID_REQUEST", "Invalid application ID: "+err.Error()))
	}

	objectName, err := h.reportService.GenerateAndArchive(c.Context(), applicationID, h.baseURI(c))
	if err != nil {
		return h.mapGenerateError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(apiutil.CreateSuccessResponse(fiber.Map{
		"object_name": objectName,
	}))
}

// baseURI allows callers to point at an alternate template location; the
// configured template base is the default.
func (h *ReportHandler) baseURI(c fiber.Ctx) string {
	if override := c.Query("template_base"); override != "" {
		return override
	}
	return h.templateBase
}

func (h *ReportHandler) mapGenerateError(c fiber.Ctx, err error) error {
	var notFound *services.ApplicationNotFoundError
	if errors.As(err, &notFound) {
		return c.Status(http.StatusNotFound).JSON(
			apiutil.CreateErrorResponse("NOT_FOUND", err.Error()))
	}

	var unsupported *services.UnsupportedStateError
	if errors.As(err, &unsupported) {
		return c.Status(http.StatusUnprocessableEntity).JSON(
			apiutil.CreateErrorResponse("UNSUPPORTED_STATE", err.Error()))
	}

	slog.Error("Status document generation failed", "error", err)
	return c.Status(http.StatusInternalServerError).JSON(
		apiutil.CreateErrorResponse("INTERNAL_ERROR", "Failed to generate status document"))
}
