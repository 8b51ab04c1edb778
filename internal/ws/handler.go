package ws

import (
	"context"
	"log"
	"net/http"

	"jobport/internal/domain/company"
	"jobport/internal/pkg/authz"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type companyResolver interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (company.Company, error)
}

type Handler struct {
	hub       *Hub
	companies companyResolver
	logger    *log.Logger
}

func NewHandler(hub *Hub, companies companyResolver, logger *log.Logger) *Handler {
	return &Handler{hub: hub, companies: companies, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleApplicationsWS upgrades an authenticated COMPANY request to a
// websocket subscribed to that company's application events.
func (h *Handler) HandleApplicationsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	actor, ok := c.Locals("actor").(authz.Actor)
	if !ok || !actor.Authenticated() {
		return fiber.ErrUnauthorized
	}
	if err := authz.Authorize(actor, authz.ActionViewCompanyApps); err != nil {
		return fiber.ErrForbidden
	}

	comp, err := h.companies.GetByUserID(c.Context(), actor.UserID)
	if err != nil {
		return fiber.ErrForbidden
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | error=%v", err)
			}
			return
		}

		client := NewClient(h.hub, conn, comp.ID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
