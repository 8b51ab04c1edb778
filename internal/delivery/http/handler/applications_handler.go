package handler

import (
	"errors"

	"jobport/internal/delivery/http/middleware"
	"jobport/internal/pkg/authz"
	"jobport/internal/pkg/response"
	"jobport/internal/storage"
	"jobport/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationsHandler struct {
	uc     usecase.ApplicationUsecase
	authMw *middleware.AuthMiddleware
}

type statusRequest struct {
	Status string `json:"status"`
}

func NewApplicationsHandler(uc usecase.ApplicationUsecase, authMw *middleware.AuthMiddleware) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc, authMw: authMw}
}

func (h *ApplicationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	auth := h.authMw.Middleware()

	r.Post("/apply/:jobId", h.Apply, auth, middleware.RequireAction(authz.ActionApply))
	r.Get("/my-applications", h.MyApplications, auth, middleware.RequireAction(authz.ActionViewOwnApps))
	r.Get("/company-applications", h.CompanyApplications, auth, middleware.RequireAction(authz.ActionViewCompanyApps))
	r.Put("/:id/status", h.SetStatus, auth, middleware.RequireAction(authz.ActionSetApplicationStatus))
}

func (h *ApplicationsHandler) Apply(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "jobId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is required", nil, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is required", nil, err)
	}
	defer file.Close()

	actor := middleware.ActorFromCtx(c)
	created, err := h.uc.Apply(c.Context(), actor.UserID, usecase.ApplyInput{
		JobID:       jobID,
		CoverLetter: c.FormValue("coverLetter"),
		Resume: storage.Upload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      file,
		},
	})
	if err != nil {
		return mapApplicationError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *ApplicationsHandler) MyApplications(c fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	out, err := h.uc.MyApplications(c.Context(), actor.UserID)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ApplicationsHandler) CompanyApplications(c fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	out, err := h.uc.CompanyApplications(c.Context(), actor.UserID)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ApplicationsHandler) SetStatus(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	}

	var req statusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	actor := middleware.ActorFromCtx(c)
	updated, err := h.uc.SetStatus(c.Context(), actor.UserID, id, req.Status)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "You have already applied for this job", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)
	case errors.Is(err, usecase.ErrResumeRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is required", nil, err)
	case errors.Is(err, storage.ErrTooLarge):
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file exceeds the 5 MiB limit", nil, err)
	case errors.Is(err, storage.ErrBadType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Only PDF and Word documents are allowed", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrCompanyProfileRequired):
		return middleware.NewAppError(fiber.StatusForbidden, "Company profile required", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
