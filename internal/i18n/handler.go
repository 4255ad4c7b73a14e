package i18n

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// cookieMaxAge keeps the language choice for a year.
const cookieMaxAge = 365 * 24 * 60 * 60

// Handler serves an embedded language bundle and persists the choice in
// the session cookie, the server-side analog of the old local-storage key.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Param("lang")

		raw, err := Raw(lang)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown language"})
			return
		}

		c.SetCookie(CookieName, lang, cookieMaxAge, "/", "", false, false)
		c.Data(http.StatusOK, "application/json", raw)
	}
}
