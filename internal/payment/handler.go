package payment

import (
	"github.com/flavorrush/flavorrush-backend/internal/user"
	"github.com/gofiber/fiber/v2"
)

// Handler delegates payment-method operations to the payment service.
// This keeps wallet-specific HTTP routing isolated from the user handler.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/payment-methods", h.getMethods)
	app.Post("/api/v1/payment-methods", h.addMethod)
	app.Delete("/api/v1/payment-methods", h.removeMethod)
}

type addMethodRequest struct {
	Brand  string `json:"brand"`
	Last4  string `json:"last4"`
	Expiry string `json:"expiry"`
}

type removeMethodRequest struct {
	MethodID int `json:"methodId"`
}

func (h *Handler) getMethods(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	methods, err := h.service.GetMethods(userID)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(methods)
}

func (h *Handler) addMethod(c *fiber.Ctx) error {
	payload := new(addMethodRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	m, err := h.service.AddMethod(userID, payload.Brand, payload.Last4, payload.Expiry)
	if err != nil {
		switch err {
		case ErrExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "payment method already saved"})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(m)
}

func (h *Handler) removeMethod(c *fiber.Ctx) error {
	payload := new(removeMethodRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.MethodID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid methodId"})
	}
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.RemoveMethod(userID, payload.MethodID); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.SendStatus(fiber.StatusOK)
}
