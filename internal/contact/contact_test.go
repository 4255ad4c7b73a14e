package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestValidate_AllMissing(t *testing.T) {
	errs := Form{}.Validate()

	assert.Equal(t, map[string]string{
		"full_name": "contact.error_name",
		"email":     "contact.error_email",
		"message":   "contact.error_message",
	}, errs)
}

func TestValidate_BadEmail(t *testing.T) {
	for _, email := range []string{"nope", "a@b", "a b@c.com", "@c.com"} {
		errs := Form{FullName: "N", Email: email, Message: "hi"}.Validate()
		assert.Equal(t, map[string]string{"email": "contact.error_email"}, errs, email)
	}
}

func TestValidate_WhitespaceOnlyCounts(t *testing.T) {
	errs := Form{FullName: "  ", Email: "a@b.com", Message: "\t\n"}.Validate()
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "full_name")
	assert.Contains(t, errs, "message")
}

func TestValidate_OK(t *testing.T) {
	errs := Form{FullName: "Maria P.", Email: "maria@example.com", Message: "Is the NMAX still available?"}.Validate()
	assert.Empty(t, errs)
}

func TestSubjectKey(t *testing.T) {
	assert.Equal(t, "contact.subject_testride", SubjectKey("testride"))
	assert.Equal(t, "contact.subject_general", SubjectKey("general"))
	assert.Equal(t, "contact.subject_general", SubjectKey("whatever"))
	assert.Equal(t, "contact.subject_general", SubjectKey(""))
}

// identity translator, keys pass through untouched
func keyT(key string) string { return key }

func TestMailto_Structure(t *testing.T) {
	f := Form{
		FullName: "Maria P.",
		Email:    "maria@example.com",
		Subject:  "inquiry",
		Message:  "Is it available?",
	}

	m := f.Mailto("info@dealer.example", keyT)

	require.True(t, strings.HasPrefix(m, "mailto:info@dealer.example?subject="))
	assert.Contains(t, m, "subject=contact.subject_inquiry&body=")
	assert.Contains(t, m, "maria%40example.com")
	assert.Contains(t, m, "Is%20it%20available%3F")
	assert.NotContains(t, m, "+", "spaces must encode as %20, not +")

	// empty phone renders as a dash line
	assert.Contains(t, m, "contact.email_phone%3A%20-")
}

func submit(t *testing.T, h *Handler, body string, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.POST("/api/contact", h.Submit)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "site-language", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmit_InvalidJSON(t *testing.T) {
	w := submit(t, NewHandler("info@dealer.example", "gr"), "{not json", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	w := submit(t, NewHandler("info@dealer.example", "gr"), `{"full_name": "X"}`, "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "message")
	assert.NotContains(t, body.Errors, "full_name")
}

func TestSubmit_BuildsLocalizedMailto(t *testing.T) {
	payload := `{"full_name": "Maria P.", "email": "maria@example.com", "subject": "testride", "message": "hello"}`

	w := submit(t, NewHandler("info@dealer.example", "gr"), payload, "en")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Mailto string `json:"mailto"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Mailto, "subject=Test%20ride%20request")

	// no cookie falls back to the default language
	w = submit(t, NewHandler("info@dealer.example", "gr"), payload, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Mailto, escape("Αίτημα για test ride"))
}
