package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/mapper"
)

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError(fmt.Sprintf("invalid %s", name), raw)
	}
	return uint(id), nil
}

// FlexibleID decodes from either a JSON number or a JSON string holding digits.
type FlexibleID uint

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("id must not be null")
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	id, err := parsePositiveID(raw)
	if err != nil {
		return err
	}
	*f = FlexibleID(id)
	return nil
}

// FlexibleIDs converts decoded ids to plain uints.
func FlexibleIDs(ids []FlexibleID) []uint {
	return mapper.MapSlice(ids, func(id FlexibleID) uint { return uint(id) })
}

// ParseIDQuery collects ids from a query parameter. Both repeated keys
// (?ids=1&ids=2 or ?ids[]=1) and comma separated values are accepted.
func ParseIDQuery(c *gin.Context, key string) ([]uint, error) {
	values := append(c.QueryArray(key), c.QueryArray(key+"[]")...)

	ids := make([]uint, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := parsePositiveID(part)
			if err != nil {
				return nil, errors.NewBadRequestError(fmt.Sprintf("invalid %s", key), part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parsePositiveID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	if id == 0 {
		return 0, fmt.Errorf("id must be positive")
	}
	return uint(id), nil
}
