package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"greenhall/internal/service"
)

// CreateTeamMember handles POST /team/upload. The image is mandatory.
func CreateTeamMember(svc service.TeamMemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		image, closer, err := openUpload(c, "image")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		if closer != nil {
			defer closer.Close()
		}

		in := service.CreateTeamMemberInput{
			Name:        c.FormValue("name"),
			Role:        c.FormValue("role"),
			Position:    c.FormValue("position"),
			Team:        c.FormValue("team"),
			Information: c.FormValue("information"),
			Email:       c.FormValue("email"),
			Phone:       c.FormValue("phone"),
			Image:       image,
		}

		m, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err, "Failed to create team member")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    "Team member created successfully!",
			"teamMember": m,
		})
	}
}

// ListTeamMembers handles GET /team, sorted by upload date descending.
func ListTeamMembers(svc service.TeamMemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		members, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err, "Failed to fetch team members")
		}
		return c.JSON(fiber.Map{"teamMembers": members})
	}
}

// GetTeamMember handles GET /team/:id.
func GetTeamMember(svc service.TeamMemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusNotFound, "Team member not found")
		}

		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err, "Failed to fetch team member")
		}
		return c.JSON(fiber.Map{"teamMember": m})
	}
}

// UpdateTeamMember handles PUT /team/:id. Only fields present in the form
// are touched; a new image replaces (and best-effort deletes) the old one.
func UpdateTeamMember(svc service.TeamMemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusNotFound, "Team member not found")
		}

		image, closer, err := openUpload(c, "image")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		if closer != nil {
			defer closer.Close()
		}

		form := multipartForm(c)
		in := service.UpdateTeamMemberInput{
			Name:        formPtr(form, "name"),
			Role:        formPtr(form, "role"),
			Position:    formPtr(form, "position"),
			Team:        formPtr(form, "team"),
			Information: formPtr(form, "information"),
			Email:       formPtr(form, "email"),
			Phone:       formPtr(form, "phone"),
			Image:       image,
		}

		m, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err, "Failed to update team member")
		}

		return c.JSON(fiber.Map{
			"message":    "Team member updated successfully",
			"teamMember": m,
		})
	}
}

// DeleteTeamMember handles DELETE /team/:id. The remote asset is destroyed
// best-effort before the record goes away.
func DeleteTeamMember(svc service.TeamMemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusNotFound, "Team member not found")
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondServiceError(c, err, "Failed to delete team member")
		}
		return c.JSON(fiber.Map{"message": "Team member deleted successfully"})
	}
}
