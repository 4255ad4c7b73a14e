package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BothLanguages(t *testing.T) {
	for _, lang := range []string{"en", "gr"} {
		b, err := Load(lang)
		require.NoError(t, err, lang)
		assert.Equal(t, lang, b.Lang())
	}
}

func TestLoad_UnknownLanguage(t *testing.T) {
	_, err := Load("de")
	assert.Error(t, err)
}

func TestT_DotPathLookup(t *testing.T) {
	en, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, "Brand", en.T("listing.brand"))
	assert.Equal(t, "Featured", en.T("listing.featured_badge"))

	gr, err := Load("gr")
	require.NoError(t, err)
	assert.Equal(t, "Μάρκα", gr.T("listing.brand"))
}

func TestT_MissingKeyReturnsKey(t *testing.T) {
	en, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, "nope.missing", en.T("nope.missing"))
	assert.Equal(t, "listing", en.T("listing"), "non-leaf nodes are not strings")
}

func TestLookup(t *testing.T) {
	en, err := Load("en")
	require.NoError(t, err)

	v, ok := en.Lookup("common.km")
	assert.True(t, ok)
	assert.Equal(t, "km", v)

	_, ok = en.Lookup("common.km.deeper")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en", Normalize("en", "gr"))
	assert.Equal(t, "gr", Normalize("gr", "en"))
	assert.Equal(t, "gr", Normalize("fr", "gr"))
	assert.Equal(t, "gr", Normalize("", "gr"))
}

func TestInterpolate(t *testing.T) {
	out := Interpolate("Showing {{shown}} of {{total}} motorcycles", map[string]string{
		"shown": "3",
		"total": "12",
	})
	assert.Equal(t, "Showing 3 of 12 motorcycles", out)

	assert.Equal(t, "Hello {{who}}", Interpolate("Hello {{who}}", nil))
}

func TestBundlesShareKeySet(t *testing.T) {
	en, err := Load("en")
	require.NoError(t, err)
	gr, err := Load("gr")
	require.NoError(t, err)

	for _, key := range []string{
		"nav.home", "common.error", "listings.all", "listings.all_cc",
		"listing.view_details", "contact.subject_inquiry", "contact.email_message",
	} {
		_, ok := en.Lookup(key)
		assert.True(t, ok, "en missing %s", key)
		_, ok = gr.Lookup(key)
		assert.True(t, ok, "gr missing %s", key)
	}
}
