package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/AshilyAnnMathew/TodoServer/pkg/translator"
)

// LanguageMiddleware picks the response language from the Accept-Language
// header, falling back to english.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
