package proxy

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"motodesign/pkg/config"
)

// Handler is the secret-hiding pass-through to the Airtable store. The
// client never sees the API key: it calls /api/bikes and the handler
// forwards to the store, mirroring status and body verbatim.
type Handler struct {
	Airtable config.Airtable
	HTTP     *http.Client
	Log      *slog.Logger
}

func NewHandler(cfg config.Airtable, log *slog.Logger) *Handler {
	return &Handler{
		Airtable: cfg,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
		Log:      log,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bikes", h.bikes)
}

func (h *Handler) bikes(c *gin.Context) {
	if h.Airtable.APIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Airtable API key not configured"})
		return
	}

	target := h.targetURL(c.Request.URL.Query())

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, target, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch data from Airtable"})
		return
	}
	req.Header.Set("Authorization", "Bearer "+h.Airtable.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.HTTP.Do(req)
	if err != nil {
		h.Log.Error("proxy request failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch data from Airtable"})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.Log.Error("proxy read failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch data from Airtable"})
		return
	}

	// Same status and body as the store returned.
	c.Data(resp.StatusCode, "application/json", body)
}

// targetURL builds the store URL: a single-record fetch when an id is
// present, otherwise a collection fetch with every remaining query
// parameter (pageSize, filterByFormula, sort, offset) forwarded verbatim.
func (h *Handler) targetURL(params url.Values) string {
	base := h.Airtable.Endpoint + "/" + h.Airtable.BaseID + "/" + url.PathEscape(h.Airtable.TableName)

	if id := params.Get("id"); id != "" {
		return base + "/" + url.PathEscape(id)
	}

	if len(params) == 0 {
		return base
	}
	return base + "?" + params.Encode()
}
