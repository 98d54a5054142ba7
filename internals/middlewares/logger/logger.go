// file: internals/middlewares/logger/logger.go
package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request billing. Body response tagihan
// bisa besar (document endpoint), jadi cukup status + latency + bytes.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[plazaku] ${time} | ${ip} | ${method} ${path} | ${status} | ${latency} | ${bytesSent}B\n",
	})
}
