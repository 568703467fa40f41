package handlers

import (
	"log/slog"
	"net/http"

	"report-service/internal/apiutil"
	"report-service/internal/models"
	"report-service/internal/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	applicationRepo *repository.ApplicationRepository
}

func NewApplicationHandler(applicationRepo *repository.ApplicationRepository) *ApplicationHandler {
	return &ApplicationHandler{
		applicationRepo: applicationRepo,
	}
}

func (h *ApplicationHandler) Register(app *fiber.App) {
	protectedGr := app.Group("report/protected/api/v1")

	applicationGroup := protectedGr.Group("/applications")
	applicationGroup.Get("/list", h.GetAllApplications)  // GET   /applications/list
	applicationGroup.Get("/:id", h.GetApplicationDetail) // GET   /applications/:id
	applicationGroup.Patch("/:id/state", h.UpdateState)  // PATCH /applications/:id/state
}

func (h *ApplicationHandler) GetAllApplications(c fiber.Ctx) error {
	applications, err := h.applicationRepo.GetAll(c.Context())
	if err != nil {
		slog.Error("Failed to list applications", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			apiutil.CreateErrorResponse("INTERNAL_ERROR", "Failed to list applications"))
	}

	return c.Status(http.StatusOK).JSON(apiutil.CreateSuccessResponse(applications))
}

func (h *ApplicationHandler) GetApplicationDetail(c fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			apiutil.CreateErrorResponse("INVALID_REQUEST", "Invalid application ID: "+err.Error()))
	}

	application, err := h.applicationRepo.FindByID(c.Context(), applicationID)
	if err != nil {
		slog.Error("Failed to load application", "application_id", applicationID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			apiutil.CreateErrorResponse("INTERNAL_ERROR", "Failed to load application"))
	}
	if application == nil {
		return c.Status(http.StatusNotFound).JSON(
			apiutil.CreateErrorResponse("NOT_FOUND", "Application not found"))
	}

	return c.Status(http.StatusOK).JSON(apiutil.CreateSuccessResponse(application))
}

type updateStateRequest struct {
	State models.ApplicationState `json:"state"`
}

func (h *ApplicationHandler) UpdateState(c fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			apiutil.CreateErrorResponse("INVALID_REQUEST", "Invalid application ID: "+err.Error()))
	}

	var req updateStateRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			apiutil.CreateErrorResponse("INVALID_REQUEST", "Invalid request body: "+err.Error()))
	}

	if req.State == "" {
		return c.Status(http.StatusBadRequest).JSON(
			apiutil.CreateErrorResponse("VALIDATION_FAILED", "state is required"))
	}

	if err := h.applicationRepo.UpdateState(c.Context(), applicationID, req.State); err != nil {
		slog.Error("Failed to update application state",
			"application_id", applicationID,
			"state", req.State,
			"error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			apiutil.CreateErrorResponse("INTERNAL_ERROR", "Failed to update application state"))
	}

	return c.Status(http.StatusOK).JSON(apiutil.CreateSuccessResponse(fiber.Map{
		"id":    applicationID,
		"state": req.State,
	}))
}
