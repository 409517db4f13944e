package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	// Zero switches rate limiting off.
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %d)", c.Server.RateLimit)
	}

	if err := c.List.validate(); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if err := c.Calendar.validate(); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}

	return nil
}

func (l *ListConfig) validate() error {
	if l.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", l.PageSize)
	}
	return nil
}

func (c *CalendarConfig) validate() error {
	loc, err := time.LoadLocation(strings.TrimSpace(c.Timezone))
	if err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	c.Location = loc

	day, err := ParseWeekday(c.WeekStart)
	if err != nil {
		return fmt.Errorf("week_start: %w", err)
	}
	c.FirstWeekday = day

	return nil
}

// ParseWeekday parses an English weekday name (case-insensitive, full or
// three-letter form) into a time.Weekday.
func ParseWeekday(raw string) (time.Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", raw)
}
