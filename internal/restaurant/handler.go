package restaurant

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/restaurants", h.getRestaurants)
	app.Get("/api/v1/restaurant/:slug", h.getRestaurant)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/restaurants", h.createRestaurant)
	app.Put("/api/v1/restaurant/:slug", h.updateRestaurant)
	app.Delete("/api/v1/restaurant/:slug", h.deleteRestaurant)
}

// getRestaurants supports ?cuisine=Mexican,Tex-Mex&q=taco&maxDeliveryTime=30&sort=rating
func (h *Handler) getRestaurants(c *fiber.Ctx) error {
	var f Filter
	if raw := c.Query("cuisine"); raw != "" {
		for _, cz := range strings.Split(raw, ",") {
			if cz = strings.TrimSpace(cz); cz != "" {
				f.Cuisines = append(f.Cuisines, cz)
			}
		}
	}
	f.Query = c.Query("q")
	f.Sort = c.Query("sort")
	if raw := c.Query("maxDeliveryTime"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			f.MaxDeliveryTime = v
		}
	}

	return c.JSON(h.service.List(f))
}

func (h *Handler) getRestaurant(c *fiber.Ctx) error {
	rest, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "restaurant not found"})
	}
	return c.JSON(rest)
}

func (h *Handler) createRestaurant(c *fiber.Ctx) error {
	payload := new(Restaurant)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name is required"})
	}

	created, err := h.service.Create(*payload)
	if err != nil {
		switch err {
		case ErrExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "restaurant already exists"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateRestaurant(c *fiber.Ctx) error {
	payload := new(Restaurant)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(c.Params("slug"), *payload)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "restaurant not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteRestaurant(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("slug")); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "restaurant not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
