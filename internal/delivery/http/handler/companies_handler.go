package handler

import (
	"errors"

	"jobport/internal/delivery/http/middleware"
	"jobport/internal/domain/company"
	"jobport/internal/pkg/authz"
	"jobport/internal/pkg/response"
	"jobport/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompaniesHandler struct {
	uc     usecase.CompanyUsecase
	authMw *middleware.AuthMiddleware
}

type companyProfileRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

func NewCompaniesHandler(uc usecase.CompanyUsecase, authMw *middleware.AuthMiddleware) *CompaniesHandler {
	return &CompaniesHandler{uc: uc, authMw: authMw}
}

func (h *CompaniesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)

	companyOnly := []any{h.authMw.Middleware(), middleware.RequireAction(authz.ActionUpdateCompany)}
	r.Put("/profile", h.UpdateProfile, companyOnly...)
	r.Get("/dashboard/stats", h.DashboardStats,
		h.authMw.Middleware(), middleware.RequireAction(authz.ActionViewCompanyStats))

	// Registered last so "profile" and "dashboard" are not swallowed by
	// the id parameter.
	r.Get("/:id", h.Get)
}

func (h *CompaniesHandler) List(c fiber.Ctx) error {
	out, err := h.uc.ListCompanies(c.Context())
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CompaniesHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	}

	profile, err := h.uc.GetCompany(c.Context(), id)
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profile)
}

func (h *CompaniesHandler) UpdateProfile(c fiber.Ctx) error {
	var req companyProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	actor := middleware.ActorFromCtx(c)
	updated, err := h.uc.UpdateProfile(c.Context(), actor.UserID, company.ProfileUpdate{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *CompaniesHandler) DashboardStats(c fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	stats, err := h.uc.DashboardStats(c.Context(), actor.UserID)
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}

func mapCompanyError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	case errors.Is(err, usecase.ErrCompanyProfileRequired):
		return middleware.NewAppError(fiber.StatusForbidden, "Company profile required", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
