package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"motodesign/pkg/models"
)

// FormatPrice renders a price in EUR for the given language ("en" or
// "gr"). Zero means the dealer quotes on request.
func FormatPrice(price int, lang string) string {
	if price <= 0 {
		if lang == "gr" {
			return "Επικοινωνήστε για Τιμή"
		}
		return "Contact for Price"
	}

	tag := language.AmericanEnglish
	if lang == "gr" {
		tag = language.Greek
	}
	return message.NewPrinter(tag).Sprintf("€%v", number.Decimal(price))
}

// FormatMileage renders a distance with locale digit grouping.
func FormatMileage(km int, lang string) string {
	tag := language.AmericanEnglish
	if lang == "gr" {
		tag = language.Greek
	}
	return message.NewPrinter(tag).Sprintf("%v", number.Decimal(km))
}

// LocalizedField returns the language-specific value of a bilingual
// field ("title" or "description"), falling back to English, then "".
func LocalizedField(r models.Record, field, lang string) string {
	var en, gr string
	switch field {
	case "title":
		en, gr = r.TitleEn, r.TitleGr
	case "description":
		en, gr = r.DescriptionEn, r.DescriptionGr
	default:
		return ""
	}

	if lang == "gr" && gr != "" {
		return gr
	}
	return en
}
