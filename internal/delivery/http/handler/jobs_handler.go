package handler

import (
	"errors"
	"strconv"

	"jobport/internal/delivery/http/dto"
	"jobport/internal/delivery/http/middleware"
	"jobport/internal/domain/job"
	"jobport/internal/pkg/authz"
	"jobport/internal/pkg/response"
	"jobport/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc     usecase.JobUsecase
	authMw *middleware.AuthMiddleware
}

type jobRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Salary      *string `json:"salary"`
	Type        *string `json:"type"`
}

func NewJobsHandler(uc usecase.JobUsecase, authMw *middleware.AuthMiddleware) *JobsHandler {
	return &JobsHandler{uc: uc, authMw: authMw}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)

	companyOnly := []any{h.authMw.Middleware(), middleware.RequireAction(authz.ActionCreateJob)}
	r.Post("/", h.Create, companyOnly...)
	r.Put("/:id", h.Update, companyOnly...)
	r.Delete("/:id", h.Delete, companyOnly...)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	page, err := parseQueryInt(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	limit, err := parseQueryInt(c, "limit", 10)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, pagination, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobsPage{Jobs: items, Pagination: pagination})
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	l, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, l)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	actor := middleware.ActorFromCtx(c)
	created, err := h.uc.CreateJob(c.Context(), actor.UserID, draftFromRequest(req))
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	actor := middleware.ActorFromCtx(c)
	updated, err := h.uc.UpdateJob(c.Context(), actor.UserID, id, draftFromRequest(req))
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *JobsHandler) Delete(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	actor := middleware.ActorFromCtx(c)
	if err := h.uc.DeleteJob(c.Context(), actor.UserID, id); err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted successfully", nil)
}

func draftFromRequest(req jobRequest) job.Draft {
	return job.Draft{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Salary:      req.Salary,
		Type:        req.Type,
	}
}

func mapJobError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "All required fields must be provided", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCompanyProfileRequired):
		return middleware.NewAppError(fiber.StatusForbidden, "Company profile required", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseUUIDParam(c fiber.Ctx, key string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(key))
}
