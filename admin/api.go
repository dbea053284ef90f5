package admin

import (
	"encoding/csv"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"

	"github.com/devmaikelrm/BotModerno-sub000/config"
	"github.com/devmaikelrm/BotModerno-sub000/db"
	"github.com/devmaikelrm/BotModerno-sub000/handler/report"
	"github.com/devmaikelrm/BotModerno-sub000/model"
)

// reportDTO is the JSON shape served by the API. The model structs carry
// no tags, so the mapping lives here.
type reportDTO struct {
	ID             string   `json:"id"`
	UserID         string   `json:"user_id"`
	AuthorNickname string   `json:"author_nickname"`
	CommercialName string   `json:"commercial_name"`
	Model          string   `json:"model"`
	Works          bool     `json:"works"`
	Bands          []string `json:"bands"`
	Provinces      []string `json:"provinces"`
	Observations   string   `json:"observations"`
	Status         string   `json:"status"`
	ReviewerID     string   `json:"reviewer_id,omitempty"`
	CreatedAt      int64    `json:"created_at"`
}

func toDTO(r *model.Report) reportDTO {
	return reportDTO{
		ID:             r.ID,
		UserID:         r.UserID,
		AuthorNickname: r.AuthorNickname,
		CommercialName: r.CommercialName,
		Model:          r.Model,
		Works:          r.Works,
		Bands:          r.Bands,
		Provinces:      r.Provinces,
		Observations:   r.Observations,
		Status:         r.Status,
		ReviewerID:     r.ReviewerID,
		CreatedAt:      r.CreatedAt,
	}
}

// NewApp builds the admin API. The Discord session may be nil; moderation
// endpoints then skip publishing and notifications.
func NewApp(s *discordgo.Session) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	api := app.Group("/api", requireToken)

	api.Get("/reports", listReports)
	api.Post("/reports/:id/approve", moderate(s, model.StatusApproved))
	api.Post("/reports/:id/reject", moderate(s, model.StatusRejected))
	api.Get("/export.json", exportJSON)
	api.Get("/export.csv", exportCSV)

	return app
}

// Start serves the admin API on the configured listen address.
func Start(s *discordgo.Session) error {
	app := NewApp(s)
	log.Printf("Admin API listening on %s", config.Cfg.AdminAPI.Listen)
	return app.Listen(config.Cfg.AdminAPI.Listen)
}

func requireToken(c *fiber.Ctx) error {
	token := config.Cfg.AdminAPI.Token
	if token == "" || c.Get("X-Admin-Token") != token {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid admin token",
		})
	}
	return c.Next()
}

func listReports(c *fiber.Ctx) error {
	status := c.Query("status")
	switch status {
	case "", model.StatusPending, model.StatusApproved, model.StatusRejected:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown status " + strconv.Quote(status),
		})
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 25)
	if limit < 1 || limit > 100 {
		limit = 25
	}

	reports, err := db.ListReportsByStatus(status, limit, (page-1)*limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	total, err := db.CountReportsByStatus(status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	dtos := make([]reportDTO, 0, len(reports))
	for _, r := range reports {
		dtos = append(dtos, toDTO(r))
	}
	return c.JSON(fiber.Map{
		"reports": dtos,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// moderate resolves a pending report. Repeats and unknown IDs are
// reported to the caller instead of being silently ignored.
func moderate(s *discordgo.Session, verdict string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := db.GetReport(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if r == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "report not found",
			})
		}
		if r.Status != model.StatusPending {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "report already " + r.Status,
			})
		}

		reviewerID := c.Get("X-Reviewer-ID")
		if reviewerID == "" {
			reviewerID = "admin-api"
		}

		if verdict == model.StatusApproved {
			err = report.Approve(s, r, reviewerID)
		} else {
			err = report.Reject(s, r, reviewerID)
		}
		if err != nil {
			// The pending check above is only advisory; the conditional
			// update in the store arbitrates concurrent verdicts.
			if errors.Is(err, db.ErrAlreadyModerated) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "report already moderated",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		r.Status = verdict
		r.ReviewerID = reviewerID
		return c.JSON(toDTO(r))
	}
}

func exportJSON(c *fiber.Ctx) error {
	reports, err := db.ListApprovedReports()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	dtos := make([]reportDTO, 0, len(reports))
	for _, r := range reports {
		dtos = append(dtos, toDTO(r))
	}
	return c.JSON(dtos)
}

func exportCSV(c *fiber.Ctx) error {
	reports, err := db.ListApprovedReports()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Write([]string{"model", "commercial_name", "works", "bands", "provinces", "observations", "created_at"})
	for _, r := range reports {
		works := "no"
		if r.Works {
			works = "si"
		}
		w.Write([]string{
			r.Model,
			r.CommercialName,
			works,
			strings.Join(r.Bands, " "),
			strings.Join(r.Provinces, " "),
			r.Observations,
			strconv.FormatInt(r.CreatedAt, 10),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reportes.csv"`)
	return c.SendString(sb.String())
}
