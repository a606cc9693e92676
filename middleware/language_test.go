package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"github.com/stretchr/testify/assert"
)

func langFor(t *testing.T, target, acceptLanguage string) models.Lang {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		c.Request.Header.Set("Accept-Language", acceptLanguage)
	}

	Language(c)
	return Lang(c)
}

func TestLanguage_QueryParamWins(t *testing.T) {
	assert.Equal(t, models.LangEN, langFor(t, "/services?lang=en", "nb-NO"))
	assert.Equal(t, models.LangNO, langFor(t, "/services?lang=no", "en-US"))
}

func TestLanguage_AcceptLanguageHeader(t *testing.T) {
	assert.Equal(t, models.LangEN, langFor(t, "/services", "en-GB,en;q=0.9"))
	assert.Equal(t, models.LangEN, langFor(t, "/services", "EN"))
	assert.Equal(t, models.LangNO, langFor(t, "/services", "nb-NO,nb;q=0.9"))
}

func TestLanguage_DefaultsToNorwegian(t *testing.T) {
	assert.Equal(t, models.LangNO, langFor(t, "/services", ""))
}
