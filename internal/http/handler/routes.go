package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"greenhall/internal/database"
	"greenhall/internal/service"
)

// RequireDatabase rejects requests with 503 when the database cannot be
// reached, so entity routes fail fast instead of surfacing driver errors.
func RequireDatabase(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !database.IsConnected(c.UserContext(), db) {
			return writeErrorDetails(c, fiber.StatusServiceUnavailable,
				"Database unavailable", "the server is temporarily unable to reach its database")
		}
		return c.Next()
	}
}

// Root handles GET / and reports service identity plus database reachability.
func Root(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := "connected"
		if !database.IsConnected(c.UserContext(), db) {
			state = "disconnected"
		}
		return c.JSON(fiber.Map{
			"message":   "Greenhall Capital Backend API",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  state,
		})
	}
}

// HealthCheck handles GET /health and fails when the database is unreachable.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !database.IsConnected(c.UserContext(), db) {
			return writeErrorDetails(c, fiber.StatusServiceUnavailable,
				"Database unavailable", "health check failed: database ping did not succeed")
		}
		return c.JSON(fiber.Map{"status": "ok", "database": "connected"})
	}
}

// LivenessProbe handles GET /healthz. It only proves the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// RegisterRoutes mounts every API route on the app. Entity routes sit behind
// the database gate; probes do not.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	teamSvc service.TeamMemberService,
	newsSvc service.NewsService,
	portfolioSvc service.PortfolioService,
) {
	app.Get("/", Root(db))
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	gate := RequireDatabase(db)

	team := app.Group("/team", gate)
	team.Post("/upload", CreateTeamMember(teamSvc))
	team.Get("/", ListTeamMembers(teamSvc))
	team.Get("/:id", GetTeamMember(teamSvc))
	team.Put("/:id", UpdateTeamMember(teamSvc))
	team.Delete("/:id", DeleteTeamMember(teamSvc))

	news := app.Group("/news", gate)
	news.Post("/upload", CreateNews(newsSvc))
	news.Get("/", ListNews(newsSvc))
	news.Get("/:id", GetNews(newsSvc))
	news.Put("/:id", UpdateNews(newsSvc))
	news.Delete("/:id", DeleteNews(newsSvc))

	portfolio := app.Group("/portfolio", gate)
	portfolio.Post("/", CreatePortfolio(portfolioSvc))
	portfolio.Get("/", ListPortfolio(portfolioSvc))
	portfolio.Get("/:id", GetPortfolio(portfolioSvc))
	portfolio.Put("/:id", UpdatePortfolio(portfolioSvc))
	portfolio.Delete("/:id", DeletePortfolio(portfolioSvc))
}
