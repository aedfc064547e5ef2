package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"testertalk/internal/shared/errors"
)

// ParseIDParam parses a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
