package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"greenhall/internal/service"
)

// CreateNews handles POST /news/upload. The image is optional.
func CreateNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		image, closer, err := openUpload(c, "image")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		if closer != nil {
			defer closer.Close()
		}

		in := service.CreateNewsInput{
			Title:    c.FormValue("title"),
			NewsDate: c.FormValue("newsDate"),
			Content:  c.FormValue("content"),
			Image:    image,
		}

		n, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err, "Failed to create news")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "News created successfully!",
			"news":    n,
		})
	}
}

// ListNews handles GET /news, sorted by news date descending.
func ListNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err, "Failed to fetch news")
		}
		return c.JSON(fiber.Map{"news": items})
	}
}

// GetNews handles GET /news/:id.
func GetNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusNotFound, "News not found")
		}

		n, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err, "Failed to fetch news")
		}
		return c.JSON(fiber.Map{"news": n})
	}
}

// UpdateNews handles PUT /news/:id.
func UpdateNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusNotFound, "News not found")
		}

		image, closer, err := openUpload(c, "image")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		if closer != nil {
			defer closer.Close()
		}

		form := multipartForm(c)
		in := service.UpdateNewsInput{
			Title:    formPtr(form, "title"),
			NewsDate: formPtr(form, "newsDate"),
			Content:  formPtr(form, "content"),
			Image:    image,
		}

		n, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err, "Failed to update news")
		}

		return c.JSON(fiber.Map{
			"message": "News updated successfully",
			"news":    n,
		})
	}
}

// DeleteNews handles DELETE /news/:id.
func DeleteNews(svc service.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusNotFound, "News not found")
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondServiceError(c, err, "Failed to delete news")
		}
		return c.JSON(fiber.Map{"message": "News deleted successfully"})
	}
}
