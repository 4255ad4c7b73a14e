package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motodesign/internal/i18n"
	"motodesign/internal/seo"
	"motodesign/pkg/config"
	"motodesign/pkg/models"
)

// Handler serves the listings API from the cached collection.
type Handler struct {
	Cache       *CollectionCache
	Fetcher     RecordFetcher
	Site        config.Site
	DefaultLang string
}

func NewHandler(cache *CollectionCache, fetcher RecordFetcher, site config.Site, defaultLang string) *Handler {
	return &Handler{Cache: cache, Fetcher: fetcher, Site: site, DefaultLang: defaultLang}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)                // GET /api/listings
	rg.GET("/:id", h.getByID)         // GET /api/listings/:id
	rg.GET("/:id/related", h.related) // GET /api/listings/:id/related
}

// lang resolves the session language: persisted cookie first, then the
// configured default.
func (h *Handler) lang(c *gin.Context) string {
	if v, err := c.Cookie(i18n.CookieName); err == nil {
		return i18n.Normalize(v, h.DefaultLang)
	}
	return h.DefaultLang
}

func (h *Handler) list(c *gin.Context) {
	lang := h.lang(c)

	criteria := ParseCriteria(c.Request.URL.Query())
	criteria.Lang = lang

	collection, err := h.Cache.Collection(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "listings unavailable"})
		return
	}

	filtered := Apply(collection, criteria)

	items := make([]gin.H, 0, len(filtered))
	for _, r := range filtered {
		items = append(items, listingView(r, lang))
	}

	c.JSON(http.StatusOK, gin.H{
		"total":          len(collection),
		"count":          len(filtered),
		"active_filters": criteria.ActiveCount(),
		"query":          criteria.Values().Encode(),
		"facets":         Facets(collection),
		"items":          items,
	})
}

func (h *Handler) getByID(c *gin.Context) {
	lang := h.lang(c)
	id := c.Param("id")

	rec, err := h.Fetcher.FetchRecord(c.Request.Context(), id)
	if err != nil {
		var ue *UpstreamError
		if errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "listing unavailable"})
		return
	}

	title := LocalizedField(rec, "title", lang)
	c.JSON(http.StatusOK, gin.H{
		"item":          rec,
		"title":         title,
		"description":   LocalizedField(rec, "description", lang),
		"price_display": FormatPrice(rec.Price, lang),
		"schema":        seo.ListingSchema(rec, title, h.Site),
	})
}

func (h *Handler) related(c *gin.Context) {
	lang := h.lang(c)
	id := c.Param("id")

	rec, err := h.Fetcher.FetchRecord(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "listing unavailable"})
		return
	}

	// The fallback path needs the collection; an upstream failure here
	// degrades to an empty related set rather than failing the view.
	collection, err := h.Cache.Collection(c.Request.Context())
	if err != nil {
		collection = nil
	}

	related := Related(c.Request.Context(), h.Fetcher, rec, collection)

	items := make([]gin.H, 0, len(related))
	for _, r := range related {
		items = append(items, listingView(r, lang))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Featured serves the homepage carousel selection.
func (h *Handler) Featured(c *gin.Context) {
	lang := h.lang(c)

	limit := 3
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	collection, err := h.Cache.Collection(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "listings unavailable"})
		return
	}

	featured := Featured(collection, limit)
	items := make([]gin.H, 0, len(featured))
	for _, r := range featured {
		items = append(items, listingView(r, lang))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// listingView is the card render-model: the record plus the display
// strings the view would otherwise derive.
func listingView(r models.Record, lang string) gin.H {
	return gin.H{
		"id":            r.ID,
		"title":         LocalizedField(r, "title", lang),
		"brand":         r.Brand,
		"model":         r.Model,
		"category":      r.Category,
		"condition":     r.Condition,
		"year":          r.Year,
		"engine_cc":     r.EngineCc,
		"mileage":       FormatMileage(r.MileageKm, lang),
		"price_display": FormatPrice(r.Price, lang),
		"featured":      r.Featured,
		"image":         r.MainImage(),
		"thumbnail":     r.MainThumbnail(),
	}
}
