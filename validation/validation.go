// Package validation runs declarative per-endpoint field rules before a
// handler is reached. Rules are data; one generic executor interprets
// them, collects every failing field, and halts the pipeline with a
// field→message map when anything failed.
package validation

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Check func(value any, present bool) bool

type Rule struct {
	Field   string
	Check   Check
	Message string
}

// Middleware evaluates every rule against the request payload. All
// failures are collected, keyed by field with the first failing
// message per field, and the handler never runs when any rule failed.
func Middleware(rules []Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := extractPayload(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "invalid request body",
			})
			return
		}

		errs := Run(rules, payload)
		if len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed",
				"errors":  errs,
			})
			return
		}

		c.Next()
	}
}

// ParamsMiddleware evaluates the rule list against the route parameters
// instead of the request body.
func ParamsMiddleware(rules []Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := map[string]any{}
		for _, param := range c.Params {
			payload[param.Key] = param.Value
		}

		errs := Run(rules, payload)
		if len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed",
				"errors":  errs,
			})
			return
		}

		c.Next()
	}
}

// Run executes the rule list against a payload and returns the per-field
// error map. Exported separately from Middleware so the rule sets and
// the executor stay independently testable.
func Run(rules []Rule, payload map[string]any) map[string]string {
	errs := map[string]string{}
	for _, rule := range rules {
		value, present := payload[rule.Field]
		if rule.Check(value, present) {
			continue
		}
		if _, seen := errs[rule.Field]; !seen {
			errs[rule.Field] = rule.Message
		}
	}
	return errs
}

// extractPayload flattens the request into a field→value map. JSON
// bodies are re-buffered so the handler can still bind them; multipart
// and urlencoded forms map repeated keys to arrays.
func extractPayload(c *gin.Context) (map[string]any, error) {
	contentType := c.ContentType()

	if contentType == "multipart/form-data" || contentType == "application/x-www-form-urlencoded" {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil && err != http.ErrNotMultipart {
			return nil, err
		}
		payload := map[string]any{}
		for key, values := range c.Request.PostForm {
			if len(values) == 1 {
				payload[key] = values[0]
			} else {
				arr := make([]any, len(values))
				for i, v := range values {
					arr[i] = v
				}
				payload[key] = arr
			}
		}
		return payload, nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	payload := map[string]any{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ---- predicates ----

func Required(value any, present bool) bool {
	if !present || value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return s != ""
	}
	return true
}

func IsString(value any, present bool) bool {
	if !Required(value, present) {
		return false
	}
	_, ok := value.(string)
	return ok
}

func IsEmail(value any, present bool) bool {
	s, ok := value.(string)
	if !present || !ok || s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func MinLength(n int) Check {
	return func(value any, present bool) bool {
		s, ok := value.(string)
		return present && ok && len(s) >= n
	}
}

// IsNumeric accepts JSON numbers and strings that parse as numbers;
// form fields always arrive as strings.
func IsNumeric(value any, present bool) bool {
	if !present {
		return false
	}
	switch v := value.(type) {
	case float64:
		return true
	case int:
		return true
	case json.Number:
		return true
	case string:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	default:
		return false
	}
}

func IsArray(value any, present bool) bool {
	if !present {
		return false
	}
	switch v := value.(type) {
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	default:
		return false
	}
}
