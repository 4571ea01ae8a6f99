package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

var defaultOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// CORS - Cross-Origin Resource Sharing for the dashboard frontends.
// Credentials are only allowed for an explicit origin list.
func CORS(origins []string) fiber.Handler {
	if len(origins) == 0 {
		origins = defaultOrigins
	}
	allowOrigins := strings.Join(origins, ",")
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Accept-Language",
		AllowCredentials: !strings.Contains(allowOrigins, "*"),
	})
}
