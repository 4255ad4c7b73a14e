package seo

import (
	"motodesign/pkg/config"
	"motodesign/pkg/models"
)

// ListingSchema builds the schema.org JSON-LD render-model for a listing
// detail page. name is the already-localized title. Pure data; the view
// layer serializes and injects it.
func ListingSchema(rec models.Record, name string, site config.Site) map[string]any {
	availability := "https://schema.org/InStock"
	if !rec.Available {
		availability = "https://schema.org/OutOfStock"
	}

	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "MotorizedBicycle",
		"name":     name,
		"brand": map[string]any{
			"@type": "Brand",
			"name":  rec.Brand,
		},
		"model": rec.Model,
		"vehicleEngine": map[string]any{
			"@type": "EngineSpecification",
			"engineDisplacement": map[string]any{
				"@type":    "QuantitativeValue",
				"value":    rec.EngineCc,
				"unitCode": "CCM",
			},
		},
		"mileageFromOdometer": map[string]any{
			"@type":    "QuantitativeValue",
			"value":    rec.MileageKm,
			"unitCode": "KMT",
		},
		"vehicleInteriorColor": rec.Color,
		"productionDate":       rec.Year,
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         rec.Price,
			"priceCurrency": "EUR",
			"availability":  availability,
			"seller": map[string]any{
				"@type": "LocalBusiness",
				"name":  site.Name,
				"address": map[string]any{
					"@type":           "PostalAddress",
					"streetAddress":   site.Address.Street,
					"addressLocality": site.Address.City,
					"postalCode":      site.Address.Postal,
					"addressCountry":  "GR",
				},
				"telephone": site.PhoneFormatted,
			},
		},
		"image": rec.MainImage(),
	}
}
