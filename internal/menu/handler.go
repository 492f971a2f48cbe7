package menu

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes menu browsing endpoints. They are public: the storefront
// lets visitors browse a restaurant's menu before signing in.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/restaurant/:slug/menu", h.getMenu)
	app.Get("/api/v1/menu/:id<[0-9]+>", h.getItem)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/menu", h.createItem)
}

func (h *Handler) getMenu(c *fiber.Ctx) error {
	slug := c.Params("slug")

	items, err := h.service.ListByRestaurant(slug)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "restaurant not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(GroupByCategory(items))
}

func (h *Handler) getItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	item, err := h.service.GetByID(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "menu item not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(item)
}

type createItemRequest struct {
	RestaurantSlug string  `json:"restaurantSlug"`
	Category       string  `json:"category"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"imageUrl"`
}

func (h *Handler) createItem(c *fiber.Ctx) error {
	payload := new(createItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.RestaurantSlug == "" || payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "restaurantSlug and name are required"})
	}
	if payload.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price must be non-negative"})
	}

	created, err := h.service.Create(Item{
		RestaurantSlug: payload.RestaurantSlug,
		Category:       payload.Category,
		Name:           payload.Name,
		Description:    payload.Description,
		Price:          payload.Price,
		ImageURL:       payload.ImageURL,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
