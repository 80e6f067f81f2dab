// Package middleware holds project-local fiber middleware.
package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logging writes one line per request after it completes.
func Logging() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		log.Printf("%s %s -> %d (%s)", c.Method(), c.OriginalURL(), status, time.Since(start))
		return err
	}
}
