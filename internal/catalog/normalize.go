package catalog

import (
	"time"

	"motodesign/pkg/models"
)

// airtableRecord mirrors one record as returned by the Airtable REST API
// (directly for single-record fetches, inside "records" for pages).
type airtableRecord struct {
	ID          string         `json:"id"`
	CreatedTime string         `json:"createdTime"`
	Fields      airtableFields `json:"fields"`
}

type airtableFields struct {
	TitleEn       string               `json:"title_en"`
	TitleGr       string               `json:"title_gr"`
	Brand         string               `json:"brand"`
	Model         string               `json:"model"`
	Category      string               `json:"category"`
	Condition     string               `json:"condition"`
	Year          int                  `json:"year"`
	Price         int                  `json:"price"`
	MileageKm     int                  `json:"mileage_km"`
	EngineCc      int                  `json:"engine_cc"`
	Color         string               `json:"color"`
	DescriptionEn string               `json:"description_en"`
	DescriptionGr string               `json:"description_gr"`
	Images        []airtableAttachment `json:"Images"`
	Featured      bool                 `json:"featured"`
	Available     *bool                `json:"available"` // absent means available
	Related       []string             `json:"relatedListings"`
}

type airtableAttachment struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Filename   string `json:"filename"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Thumbnails struct {
		Small struct {
			URL string `json:"url"`
		} `json:"small"`
		Large struct {
			URL string `json:"url"`
		} `json:"large"`
	} `json:"thumbnails"`
}

// normalizeRecord maps a raw Airtable record into the canonical Record.
// It is total: every missing field degrades to a documented default and
// the same input always yields the same output (modulo the current-year
// default for records without a year).
func normalizeRecord(raw airtableRecord) models.Record {
	f := raw.Fields

	rec := models.Record{
		ID:            raw.ID,
		TitleEn:       f.TitleEn,
		TitleGr:       f.TitleGr,
		Brand:         f.Brand,
		Model:         f.Model,
		Category:      f.Category,
		Condition:     f.Condition,
		Year:          f.Year,
		Price:         f.Price,
		MileageKm:     f.MileageKm,
		EngineCc:      f.EngineCc,
		Color:         f.Color,
		DescriptionEn: f.DescriptionEn,
		DescriptionGr: f.DescriptionGr,
		Images:        extractImages(f.Images),
		Featured:      f.Featured,
		Available:     f.Available == nil || *f.Available,
		RelatedIDs:    append([]string(nil), f.Related...),
	}

	// Greek text falls back to English so the secondary language is
	// never empty when the primary is set.
	if rec.TitleGr == "" {
		rec.TitleGr = rec.TitleEn
	}
	if rec.DescriptionGr == "" {
		rec.DescriptionGr = rec.DescriptionEn
	}

	if rec.Brand == "" {
		rec.Brand = "Yamaha"
	}
	if rec.Condition == "" {
		rec.Condition = "New"
	}
	if rec.Year == 0 {
		rec.Year = time.Now().Year()
	}

	if raw.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, raw.CreatedTime); err == nil {
			rec.CreatedAt = &t
		}
	}

	return rec
}

// extractImages maps Airtable attachments into gallery images. Thumbnails
// fall back to the full-resolution URL when the store did not generate them.
func extractImages(attachments []airtableAttachment) []models.Image {
	if len(attachments) == 0 {
		return []models.Image{}
	}

	out := make([]models.Image, 0, len(attachments))
	for _, a := range attachments {
		img := models.Image{
			ID:             a.ID,
			URL:            a.URL,
			Filename:       a.Filename,
			Thumbnail:      a.Thumbnails.Large.URL,
			ThumbnailSmall: a.Thumbnails.Small.URL,
			Width:          a.Width,
			Height:         a.Height,
		}
		if img.Thumbnail == "" {
			img.Thumbnail = a.URL
		}
		if img.ThumbnailSmall == "" {
			img.ThumbnailSmall = a.URL
		}
		out = append(out, img)
	}
	return out
}
