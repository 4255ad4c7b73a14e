package config

import (
	"os"
	"strconv"
	"time"
)

// Airtable holds the server-side credentials for the external store.
// The API key never reaches the client; the proxy handler injects it.
type Airtable struct {
	APIKey    string
	BaseID    string
	TableName string
	Endpoint  string
}

func LoadAirtable() Airtable {
	key := os.Getenv("AIRTABLE_API_KEY")

	baseID := os.Getenv("AIRTABLE_BASE_ID")
	if baseID == "" {
		baseID = "appaCJExnWJFtszE3"
	}

	table := os.Getenv("AIRTABLE_TABLE_NAME")
	if table == "" {
		table = "Motorcycle Listings"
	}

	endpoint := os.Getenv("AIRTABLE_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://api.airtable.com/v0"
	}

	return Airtable{
		APIKey:    key,
		BaseID:    baseID,
		TableName: table,
		Endpoint:  endpoint,
	}
}

// API holds the gateway fetch settings.
type API struct {
	PageSize      int           // records per page, Airtable max is 100
	RetryAttempts int           // whole-sequence retries after the first failure
	RetryDelay    time.Duration // fixed delay between attempts
	CacheTTL      time.Duration // collection snapshot lifetime
}

func LoadAPI() API {
	return API{
		PageSize:      envInt("MOTODESIGN_PAGE_SIZE", 100),
		RetryAttempts: envInt("MOTODESIGN_RETRY_ATTEMPTS", 3),
		RetryDelay:    envDuration("MOTODESIGN_RETRY_DELAY", time.Second),
		CacheTTL:      envDuration("MOTODESIGN_CACHE_TTL", 5*time.Minute),
	}
}

// Features toggles optional site behavior.
type Features struct {
	DefaultLanguage        string // "en" or "gr"
	EnableFeaturedCarousel bool
}

func LoadFeatures() Features {
	lang := os.Getenv("MOTODESIGN_DEFAULT_LANG")
	if lang != "en" && lang != "gr" {
		lang = "gr"
	}
	carousel := os.Getenv("MOTODESIGN_FEATURED_CAROUSEL") != "off"

	return Features{
		DefaultLanguage:        lang,
		EnableFeaturedCarousel: carousel,
	}
}

// Address is the dealership's physical location.
type Address struct {
	Street  string
	City    string
	Postal  string
	Country string
	Lat     float64
	Lng     float64
}

// Site holds the static dealership identity used for contact info
// and the SEO render-model.
type Site struct {
	Name           string
	Tagline        string
	Phone          string
	PhoneFormatted string
	Email          string
	Address        Address
	Facebook       string
	BusinessHours  map[string]string
}

func DefaultSite() Site {
	return Site{
		Name:           "YAMAHA Motodesign",
		Tagline:        "Premium Motorcycles in Corinth, Greece",
		Phone:          "2741022979",
		PhoneFormatted: "+30 2741 022979",
		Email:          "motodesign@yahoo.gr",
		Address: Address{
			Street:  "Πατρών 60",
			City:    "Κόρινθος",
			Postal:  "20100",
			Country: "Greece",
			Lat:     37.9359,
			Lng:     22.9318,
		},
		Facebook: "https://www.facebook.com/YAMAHAKORINTHOS/",
		BusinessHours: map[string]string{
			"en": "Mon-Fri: 9:00-17:00, Sat: 9:00-14:00",
			"gr": "Δευ-Παρ: 9:00-17:00, Σάβ: 9:00-14:00",
		},
	}
}

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
