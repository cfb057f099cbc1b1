package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"greenhall/internal/service"
)

// CreatePortfolio handles POST /portfolio. The logo is optional; all eight
// text fields are required.
func CreatePortfolio(svc service.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logo, closer, err := openUpload(c, "logo")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		if closer != nil {
			defer closer.Close()
		}

		in := service.CreatePortfolioInput{
			CompanyName:       c.FormValue("companyName"),
			Description:       c.FormValue("description"),
			Industry:          c.FormValue("industry"),
			InitialInvestment: c.FormValue("initialInvestment"),
			Headquarters:      c.FormValue("headquarters"),
			Acquisitions:      c.FormValue("acquisitions"),
			Status:            c.FormValue("status"),
			Fund:              c.FormValue("fund"),
			Logo:              logo,
		}

		p, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err, "Failed to create portfolio company")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":   "Portfolio company created successfully!",
			"portfolio": p,
		})
	}
}

// ListPortfolio handles GET /portfolio, sorted by investment date descending.
func ListPortfolio(svc service.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err, "Failed to fetch portfolio")
		}
		return c.JSON(fiber.Map{"portfolio": items})
	}
}

// GetPortfolio handles GET /portfolio/:id.
func GetPortfolio(svc service.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusNotFound, "Portfolio company not found")
		}

		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err, "Failed to fetch portfolio company")
		}
		return c.JSON(fiber.Map{"portfolio": p})
	}
}

// UpdatePortfolio handles PUT /portfolio/:id.
func UpdatePortfolio(svc service.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusNotFound, "Portfolio company not found")
		}

		logo, closer, err := openUpload(c, "logo")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		if closer != nil {
			defer closer.Close()
		}

		form := multipartForm(c)
		in := service.UpdatePortfolioInput{
			CompanyName:       formPtr(form, "companyName"),
			Description:       formPtr(form, "description"),
			Industry:          formPtr(form, "industry"),
			InitialInvestment: formPtr(form, "initialInvestment"),
			Headquarters:      formPtr(form, "headquarters"),
			Acquisitions:      formPtr(form, "acquisitions"),
			Status:            formPtr(form, "status"),
			Fund:              formPtr(form, "fund"),
			Logo:              logo,
		}

		p, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err, "Failed to update portfolio company")
		}

		return c.JSON(fiber.Map{
			"message":   "Portfolio company updated successfully",
			"portfolio": p,
		})
	}
}

// DeletePortfolio handles DELETE /portfolio/:id.
func DeletePortfolio(svc service.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusNotFound, "Portfolio company not found")
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondServiceError(c, err, "Failed to delete portfolio company")
		}
		return c.JSON(fiber.Map{"message": "Portfolio company deleted successfully"})
	}
}
