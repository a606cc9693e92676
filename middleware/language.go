package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/models"
)

// Language resolves the response language from ?lang= or Accept-Language.
// Norwegian is the default.
func Language(c *gin.Context) {
	lang := c.Query("lang")
	if lang == "" {
		// First tag of Accept-Language, e.g. "en-GB,en;q=0.9"
		header := c.GetHeader("Accept-Language")
		if i := strings.IndexAny(header, ",;"); i > 0 {
			header = header[:i]
		}
		if i := strings.Index(header, "-"); i > 0 {
			header = header[:i]
		}
		lang = strings.TrimSpace(header)
	}
	c.Set("lang", models.ParseLang(strings.ToLower(lang)))
	c.Next()
}

// Lang reads the language set by the Language middleware; Norwegian when
// the middleware did not run.
func Lang(c *gin.Context) models.Lang {
	if v, ok := c.Get("lang"); ok {
		if l, ok := v.(models.Lang); ok {
			return l
		}
	}
	return models.LangNO
}
