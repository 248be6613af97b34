package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetDownloadURL generates a download URL for a generated report file based
// on the environment (http for development, https for production).
func GetDownloadURL(c *fiber.Ctx, filePath string) string {
	env := os.Getenv("APP_ENV")
	filePath = strings.TrimPrefix(filePath, "./")
	filePath = strings.TrimPrefix(filePath, "/")

	if env == "production" {
		return fmt.Sprintf("https://%s/%s", c.Hostname(), filePath)
	}
	return fmt.Sprintf("http://%s/%s", c.Hostname(), filePath)
}
