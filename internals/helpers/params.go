package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s is not a valid UUID", name)
	}
	return id, nil
}

// ParseBoolLoose returns (value, present).
func ParseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// QueryInt reads a positive int query param, falling back to def.
func QueryInt(c *fiber.Ctx, key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// DateRange is an inclusive [From, To] pair of YYYY-MM-DD strings.
type DateRange struct {
	From string
	To   string
}

// ParseDateRange reads ?start_date=&end_date=. required=false allows both to
// be empty (no filter).
func ParseDateRange(c *fiber.Ctx, required bool) (DateRange, error) {
	r := DateRange{
		From: strings.TrimSpace(c.Query("start_date")),
		To:   strings.TrimSpace(c.Query("end_date")),
	}
	if r.From == "" && r.To == "" && !required {
		return r, nil
	}
	if !IsISODate(r.From) || !IsISODate(r.To) {
		return r, fmt.Errorf("start_date and end_date must be YYYY-MM-DD")
	}
	if r.From > r.To {
		return r, fmt.Errorf("start_date must not be after end_date")
	}
	return r, nil
}

func (r DateRange) IsZero() bool {
	return r.From == "" && r.To == ""
}

func Today(now time.Time) string {
	return now.Format(DateLayout)
}
