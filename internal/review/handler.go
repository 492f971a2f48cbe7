package review

import (
	"github.com/flavorrush/flavorrush-backend/internal/user"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler { return &Handler{service: s} }

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/restaurant/:slug/reviews", h.getReviews)
	app.Get("/api/v1/restaurant/:slug/reviews/summary", h.getSummary)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/restaurant/:slug/reviews", h.createReview)
}

type createReviewRequest struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handler) getReviews(c *fiber.Ctx) error {
	reviews, err := h.service.ListBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
	}
	return c.JSON(reviews)
}

func (h *Handler) getSummary(c *fiber.Ctx) error {
	sum, err := h.service.Summarize(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
	}
	return c.JSON(sum)
}

func (h *Handler) createReview(c *fiber.Ctx) error {
	payload := new(createReviewRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	rev, err := h.service.Create(Review{
		RestaurantSlug: c.Params("slug"),
		UserID:         userID,
		Author:         payload.Author,
		Rating:         payload.Rating,
		Comment:        payload.Comment,
	})
	if err != nil {
		switch err {
		case ErrRatingRange:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(rev)
}
