package letters

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Resolver looks up a recorded sanction letter by its file name.
type Resolver interface {
	GetByFileName(ctx context.Context, fileName string) (*Letter, error)
}

// DownloadHandler serves a generated sanction letter by file name. Names are
// resolved against the recorded letters first, so only files the generator
// wrote are ever served; anything else is a 404.
func DownloadHandler(dir string, store Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.TrimSpace(c.Params("filename"))
		if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
			return letterNotFound(c)
		}

		if _, err := store.GetByFileName(c.Context(), name); err != nil {
			if errors.Is(err, ErrNotFound) {
				return letterNotFound(c)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "could not look up letter")
		}

		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return letterNotFound(c)
		}
		defer f.Close()

		stat, err := f.Stat()
		if err != nil || stat.IsDir() {
			return letterNotFound(c)
		}

		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition", `attachment; filename=`+name)
		return c.SendStream(f, int(stat.Size()))
	}
}

func letterNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found."})
}
