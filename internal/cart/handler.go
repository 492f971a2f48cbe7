package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flavorrush/flavorrush-backend/internal/menu"
	"github.com/flavorrush/flavorrush-backend/internal/user"
)

// Handler delegates cart operations to the cart service. Menu lookups are
// needed so that added items carry their name and price snapshot.
type Handler struct {
	service     *Service
	menuService menu.ServiceInterface

	deliveryFee float64
	taxRate     float64
}

func NewHandler(s *Service, ms menu.ServiceInterface, deliveryFee, taxRate float64) *Handler {
	return &Handler{service: s, menuService: ms, deliveryFee: deliveryFee, taxRate: taxRate}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Get("/api/v1/cart/totals", h.getTotals)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Patch("/api/v1/cart/items", h.setQuantity)
	app.Delete("/api/v1/cart/items", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type addItemRequest struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity,omitempty"`
}

type setQuantityRequest struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

type removeItemRequest struct {
	ItemID int `json:"itemId"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	current, err := h.service.GetCart(userID)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(current)
}

func (h *Handler) getTotals(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	totals, err := h.service.Totals(userID, h.deliveryFee, h.taxRate)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(totals)
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ItemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid itemId"})
	}
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	menuItem, err := h.menuService.GetByID(payload.ItemID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "menu item not found"})
	}

	qty := payload.Quantity
	if qty < 1 {
		qty = 1
	}

	current, err := h.service.AddItem(userID, LineItem{
		ID:        menuItem.ID,
		Name:      menuItem.Name,
		UnitPrice: menuItem.Price,
		Quantity:  qty,
		ImageURL:  menuItem.ImageURL,
	})
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(current)
}

func (h *Handler) setQuantity(c *fiber.Ctx) error {
	payload := new(setQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ItemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid itemId"})
	}
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	// quantities below 1 are ignored by the service; the response is simply
	// the unchanged cart
	current, err := h.service.SetQuantity(userID, payload.ItemID, payload.Quantity)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(current)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	payload := new(removeItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ItemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid itemId"})
	}
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	current, err := h.service.RemoveItem(userID, payload.ItemID)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(current)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.ClearCart(userID); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
