package api

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SiddheshKanawade/news-hub-backend/model"
)

// renderError writes the structured error envelope. Raw errors are masked
// as internal errors so nothing upstream-specific leaks by accident.
func renderError(c *gin.Context, err error) {
	appErr := model.AsAppError(err)
	c.JSON(appErr.Status, appErr)
}

func intQuery(c *gin.Context, name string, defaultValue int) int {
	if value, err := strconv.Atoi(c.Query(name)); err == nil {
		return value
	}
	return defaultValue
}

// dateQuery parses an optional YYYY-MM-DD query parameter.
func dateQuery(c *gin.Context, name string) *time.Time {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

// keywordsParam reads a list parameter from repeated query values, falling
// back to a JSON array in the request body (how the reference frontend
// submits keywords).
func keywordsParam(c *gin.Context, name string) []string {
	if values := c.QueryArray(name); len(values) > 0 {
		return values
	}
	var body []string
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err == nil {
		return body
	}
	return nil
}
