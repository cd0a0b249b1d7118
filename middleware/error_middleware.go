package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tripnest/bookingbackend/config"
	"github.com/tripnest/bookingbackend/httperr"
	"github.com/tripnest/bookingbackend/utils"
)

// Errors is the single boundary handler for everything the handlers
// attach via c.Error. Operational errors keep their status and safe
// message; storage errors get translated; anything else is logged in
// full and surfaced as a generic failure, with the detail echoed back
// only in development mode.
func Errors(cfg *config.Config, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var opErr *httperr.Error
		switch {
		case errors.As(err, &opErr):
			c.JSON(opErr.Status, gin.H{"status": "fail", "message": opErr.Message})
		case utils.IsDuplicateKey(err):
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "already exists, please use another value"})
		default:
			logger.Error().Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("unexpected error")

			if cfg.IsProduction() {
				c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Something went very wrong"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		}
	}
}
