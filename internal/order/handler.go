package order

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flavorrush/flavorrush-backend/internal/user"
)

// Handler delegates order operations to the order service. Orders are always
// scoped to the authenticated user; the tracking endpoint feeds the order
// tracker widget.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.getOrders)
	app.Get("/api/v1/orders/:id<[0-9]+>", h.getOrder)
	app.Get("/api/v1/orders/:id<[0-9]+>/tracking", h.getTracking)
	app.Post("/api/v1/orders/:id<[0-9]+>/advance", h.advanceOrder)
}

// getOrders returns all orders belonging to the currently authenticated user.
func (h *Handler) getOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, ok, err := h.loadOwnOrder(c)
	if !ok {
		return err
	}
	return c.JSON(ord)
}

func (h *Handler) getTracking(c *fiber.Ctx) error {
	ord, ok, err := h.loadOwnOrder(c)
	if !ok {
		return err
	}
	return c.JSON(TrackingFor(ord))
}

// advanceOrder simulates delivery progress by moving the order one step
// forward. A real system would drive this from the kitchen/courier side.
func (h *Handler) advanceOrder(c *fiber.Ctx) error {
	ord, ok, err := h.loadOwnOrder(c)
	if !ok {
		return err
	}

	updated, err := h.service.Advance(ord.OrderID)
	if err != nil {
		switch err {
		case ErrAlreadyDelivered:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "order already delivered"})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(updated)
}

// loadOwnOrder fetches the order from the :id param and checks it belongs to
// the caller. On failure it has already written the response; the bool
// reports whether the caller may proceed.
func (h *Handler) loadOwnOrder(c *fiber.Ctx) (Order, bool, error) {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return Order{}, false, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orderID, err := c.ParamsInt("id")
	if err != nil {
		return Order{}, false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	ord, err := h.service.GetByID(orderID)
	if err != nil {
		switch err {
		case ErrNotFound:
			return Order{}, false, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return Order{}, false, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	if ord.UserID != userID {
		return Order{}, false, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}

	return ord, true, nil
}
