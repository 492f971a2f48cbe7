package checkout

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flavorrush/flavorrush-backend/internal/cart"
	"github.com/flavorrush/flavorrush-backend/internal/user"
)

// Handler exposes the checkout submission endpoint.
type Handler struct {
	orchestrator *Orchestrator
}

func NewHandler(o *Orchestrator) *Handler {
	return &Handler{orchestrator: o}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.submit)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	payload := new(DeliveryForm)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	confirmation, err := h.orchestrator.Submit(c.Context(), userID, *payload)
	if err != nil {
		if vErr, ok := err.(*ValidationError); ok {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": vErr.Error(),
				"fields":  vErr.Fields,
			})
		}
		switch err {
		case ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
		case ErrAlreadyProcessing:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "an order is already being placed"})
		case cart.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(confirmation)
}
