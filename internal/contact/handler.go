package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motodesign/internal/i18n"
)

// Handler validates contact submissions and hands back the mailto URL
// the page opens. There is no mail infrastructure; the visitor's own
// mail client sends the message.
type Handler struct {
	Email       string // dealership inbox
	DefaultLang string
}

func NewHandler(email, defaultLang string) *Handler {
	return &Handler{Email: email, DefaultLang: defaultLang}
}

func (h *Handler) Submit(c *gin.Context) {
	var form Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	lang := h.DefaultLang
	if v, err := c.Cookie(i18n.CookieName); err == nil {
		lang = i18n.Normalize(v, h.DefaultLang)
	}

	bundle, err := i18n.Load(lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "language bundle unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mailto": form.Mailto(h.Email, bundle.T)})
}
