package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Bhuwinrag/ai-loan-bot/internal/letters"
)

// Handler exposes read-only operational views over the loan pipeline.
type Handler struct {
	Pool    *pgxpool.Pool
	Letters *letters.Store
}

func NewHandler(pool *pgxpool.Pool, lettersStore *letters.Store) *Handler {
	return &Handler{Pool: pool, Letters: lettersStore}
}

type applicantRow struct {
	SessionID        string `json:"session_id"`
	Name             string `json:"name"`
	CreditScore      int    `json:"credit_score"`
	PreApprovedLimit int    `json:"pre_approved_limit"`
	RequestedAmount  *int   `json:"requested_amount,omitempty"`
	TenureMonths     *int   `json:"tenure_months,omitempty"`
	State            string `json:"state"`
	CreatedAt        string `json:"created_at"`
}

type applicantsResponse struct {
	Total      int64          `json:"total"`
	Applicants []applicantRow `json:"applicants"`
}

func (h *Handler) ListApplicants(c *fiber.Ctx) error {
	ctx := c.Context()

	var resp applicantsResponse
	if err := h.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM applicants`).Scan(&resp.Total); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed applicants total: "+err.Error())
	}

	rows, err := h.Pool.Query(ctx, `
		SELECT session_id, name, credit_score, pre_approved_limit,
		       requested_amount, tenure_months, state, created_at::text
		FROM applicants
		ORDER BY created_at DESC
		LIMIT 50`)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed applicants list: "+err.Error())
	}
	defer rows.Close()

	for rows.Next() {
		var a applicantRow
		if err := rows.Scan(&a.SessionID, &a.Name, &a.CreditScore, &a.PreApprovedLimit,
			&a.RequestedAmount, &a.TenureMonths, &a.State, &a.CreatedAt); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed scan applicants: "+err.Error())
		}
		resp.Applicants = append(resp.Applicants, a)
	}
	if err := rows.Err(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed applicants rows: "+err.Error())
	}

	return c.JSON(resp)
}

func (h *Handler) ListLetters(c *fiber.Ctx) error {
	out, err := h.Letters.List(c.Context(), 50)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed letters list: "+err.Error())
	}
	return c.JSON(fiber.Map{"letters": out})
}
