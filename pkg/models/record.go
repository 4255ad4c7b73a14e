package models

import "time"

// Record is the normalized, internal form of one catalog listing
// used by the gateway, the query engine and the HTTP layer.
//
// Raw Airtable records are mapped into this structure first;
// every downstream consumer works from this representation.
type Record struct {
	ID string `json:"id"` // Airtable record ID, opaque and immutable

	// Basic info. Title and description carry both site languages;
	// the Greek value falls back to English at normalization time.
	TitleEn   string `json:"title_en"`
	TitleGr   string `json:"title_gr"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Category  string `json:"category"`
	Condition string `json:"condition"` // "New" or "Used"

	// Specs. Zero means "not provided", except Year which defaults
	// to the current calendar year.
	Year      int    `json:"year"`
	Price     int    `json:"price"` // EUR; 0 means "price on request"
	MileageKm int    `json:"mileage_km"`
	EngineCc  int    `json:"engine_cc"`
	Color     string `json:"color"`

	DescriptionEn string `json:"description_en"`
	DescriptionGr string `json:"description_gr"`

	// Images in gallery order. Normalization keeps this empty when the
	// source record has no attachments; placeholder substitution is the
	// consuming layer's job (MainImage / MainThumbnail).
	Images []Image `json:"images"`

	Featured  bool `json:"featured"`
	Available bool `json:"available"`

	CreatedAt  *time.Time `json:"created_at,omitempty"`
	RelatedIDs []string   `json:"related_ids,omitempty"`
}

// Image is one attachment of a listing.
type Image struct {
	ID             string `json:"id"`
	URL            string `json:"url"`
	Filename       string `json:"filename"`
	Thumbnail      string `json:"thumbnail"`       // large thumbnail, falls back to URL
	ThumbnailSmall string `json:"thumbnail_small"` // small thumbnail, falls back to URL
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// PlaceholderImage is served when a listing has no attachments.
const PlaceholderImage = "/assets/placeholder.jpg"

// MainImage returns the full-resolution URL of the first image,
// or the placeholder when the listing has none.
func (r *Record) MainImage() string {
	if len(r.Images) == 0 {
		return PlaceholderImage
	}
	return r.Images[0].URL
}

// MainThumbnail returns the large thumbnail of the first image,
// or the placeholder when the listing has none.
func (r *Record) MainThumbnail() string {
	if len(r.Images) == 0 {
		return PlaceholderImage
	}
	if t := r.Images[0].Thumbnail; t != "" {
		return t
	}
	return r.Images[0].URL
}
