package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const FlashKey = "flashes"

// LoadFlashes pops pending flash messages from the session and sets them on
// the context for the next render. Flashes() consumes the messages, so the
// session must be saved afterwards.
func LoadFlashes() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if flashes := session.Flashes(); len(flashes) > 0 {
			_ = session.Save()

			messages := make([]string, 0, len(flashes))
			for _, f := range flashes {
				if s, ok := f.(string); ok {
					messages = append(messages, s)
				}
			}
			c.Set(FlashKey, messages)
		}
		c.Next()
	}
}
