// Package chat is the HTTP boundary for the loan conversation: the chat
// endpoint itself and the salary slip upload that feeds underwriting.
package chat

import (
	"errors"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/Bhuwinrag/ai-loan-bot/internal/dialog"
)

type Handler struct {
	Engine     *dialog.Engine
	UploadsDir string

	mu  sync.Mutex
	rng *rand.Rand
}

func NewHandler(engine *dialog.Engine, uploadsDir string, rng *rand.Rand) *Handler {
	return &Handler{Engine: engine, UploadsDir: uploadsDir, rng: rng}
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Metadata  *struct {
		Name   string `json:"name"`
		Amount string `json:"amount"`
	} `json:"metadata"`
}

type chatResponse struct {
	ResponseMessage string `json:"response_message"`
	Action          string `json:"action,omitempty"`
}

func (h *Handler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"response_message": "Error: No JSON data received.",
		})
	}
	if req.Message == "" || req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"response_message": "Error: 'message' or 'session_id' missing.",
		})
	}

	var meta *dialog.Metadata
	if req.Metadata != nil {
		meta = &dialog.Metadata{Name: req.Metadata.Name, Amount: req.Metadata.Amount}
	}

	reply, err := h.Engine.Step(c.Context(), req.SessionID, req.Message, meta)
	if err != nil {
		log.Printf("chat step failed for %s: %v", req.SessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"response_message": "An internal error occurred.",
		})
	}

	return c.JSON(chatResponse{ResponseMessage: reply.Message, Action: reply.Action})
}

// UploadSalarySlip accepts the salary slip as multipart form data, stores
// it, simulates income extraction and re-enters underwriting. There is no
// real OCR; the disclosed income is drawn uniformly from [40000, 120000].
func (h *Handler) UploadSalarySlip(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.FormValue("session_id"))
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"response_message": "Error: Missing session_id.",
		})
	}

	file, err := c.FormFile("salary_slip")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"response_message": "No file part in the request.",
		})
	}
	if strings.TrimSpace(file.Filename) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"response_message": "No file selected.",
		})
	}

	if err := os.MkdirAll(h.UploadsDir, 0o755); err != nil {
		log.Printf("create uploads dir: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"response_message": "An internal error occurred.",
		})
	}
	dest := filepath.Join(h.UploadsDir, secureFilename(sessionID+"_"+file.Filename))
	if err := c.SaveFile(file, dest); err != nil {
		log.Printf("save salary slip for %s: %v", sessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"response_message": "An internal error occurred.",
		})
	}

	income := h.simulatedIncome()
	log.Printf("salary slip %s received for %s, simulated income %d", file.Filename, sessionID, income)

	reply, err := h.Engine.SubmitIncome(c.Context(), sessionID, income)
	if err != nil {
		if errors.Is(err, dialog.ErrUnknownSession) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"response_message": "Error: unknown session_id.",
			})
		}
		log.Printf("submit income failed for %s: %v", sessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"response_message": "An internal error occurred.",
		})
	}

	return c.JSON(chatResponse{ResponseMessage: reply.Message, Action: reply.Action})
}

func (h *Handler) simulatedIncome() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return 40000 + h.rng.Intn(80001)
}

// secureFilename flattens anything that could escape the uploads dir.
func secureFilename(name string) string {
	name = filepath.Base(name)
	out := []byte(name)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '_', c == '-':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
