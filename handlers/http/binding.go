package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"positioning-server/validation"
)

// bindValidated decodes the request body, runs the rule set against the raw
// payload and, when the payload is clean, decodes the body again into the
// typed record. Violations are written as a 400 with the full list; the
// return value reports whether the handler should continue.
func bindValidated(c *gin.Context, rules validation.Rules, out any) bool {
	payload := map[string]any{}
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return false
	}

	if violations := rules.Apply(payload); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return false
	}

	if err := c.ShouldBindBodyWith(out, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return false
	}
	return true
}
