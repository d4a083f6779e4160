package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Bhuwinrag/ai-loan-bot/internal/admin"
	"github.com/Bhuwinrag/ai-loan-bot/internal/chat"
	"github.com/Bhuwinrag/ai-loan-bot/internal/letters"
)

type Router struct {
	ChatHandler  *chat.Handler
	AdminHandler *admin.Handler
	LettersDir   string
	LetterStore  letters.Resolver
	AdminMW      fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.ChatHandler != nil {
		app.Post("/api/chat", RateLimitChat(), r.ChatHandler.Chat)
		app.Post("/api/upload_salary_slip", r.ChatHandler.UploadSalarySlip)
	}

	if r.LettersDir != "" && r.LetterStore != nil {
		app.Get("/letters/:filename", letters.DownloadHandler(r.LettersDir, r.LetterStore))
	}

	if r.AdminHandler != nil && r.AdminMW != nil {
		app.Get("/api/admin/applicants", r.AdminMW, r.AdminHandler.ListApplicants)
		app.Get("/api/admin/letters", r.AdminMW, r.AdminHandler.ListLetters)
	}
}
