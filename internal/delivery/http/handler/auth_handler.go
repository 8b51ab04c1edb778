package handler

import (
	"errors"

	"jobport/internal/delivery/http/dto"
	"jobport/internal/delivery/http/middleware"
	"jobport/internal/pkg/response"
	"jobport/internal/usecase"
	ucauth "jobport/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc     usecase.AuthUsecase
	authMw *middleware.AuthMiddleware
}

type registerRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	Role               string `json:"role"`
	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription"`
	Website            string `json:"website"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func NewAuthHandler(uc usecase.AuthUsecase, authMw *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{uc: uc, authMw: authMw}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/me", h.Me, h.authMw.Middleware())
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	acc, token, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		Role:               req.Role,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		Website:            req.Website,
	})
	if err != nil {
		return mapAuthError(err)
	}

	data := dto.AuthData{Token: token, User: acc.User, Company: acc.Company}
	return response.Success(c, fiber.StatusCreated, "User created successfully", data)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	acc, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return mapAuthError(err)
	}

	data := dto.AuthData{Token: token, User: acc.User, Company: acc.Company}
	return response.Success(c, fiber.StatusOK, "Login successful", data)
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	acc, err := h.uc.Me(c.Context(), actor.UserID)
	if err != nil {
		return mapAuthError(err)
	}

	data := dto.MeData{User: acc.User, Company: acc.Company}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
