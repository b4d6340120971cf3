package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"daybook/internal/domain"
)

var offsetRe = regexp.MustCompile(`^([+-]?)(\d+)([dwMy])$`)

// parseDateArg resolves a --date flag value. Besides the ISO form it
// accepts relative keywords and day-granular offsets like +3d or -2w.
func parseDateArg(value string) (domain.Date, error) {
	value = strings.TrimSpace(value)

	switch strings.ToLower(value) {
	case "today":
		return domain.Today(), nil
	case "tomorrow":
		return domain.Today().AddDays(1), nil
	case "yesterday":
		return domain.Today().AddDays(-1), nil
	}

	if d, ok := parseDateOffset(value); ok {
		return d, nil
	}

	d, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, fmt.Errorf("unable to parse date %q (expected YYYY-MM-DD, a keyword like today, or an offset like +3d)", value)
	}
	return d, nil
}

func parseDateOffset(value string) (domain.Date, bool) {
	matches := offsetRe.FindStringSubmatch(value)
	if matches == nil {
		return domain.Date{}, false
	}

	num, err := strconv.Atoi(matches[2])
	if err != nil {
		return domain.Date{}, false
	}
	if matches[1] == "-" {
		num = -num
	}

	now := domain.Today()
	switch matches[3] {
	case "d":
		return now.AddDays(num), true
	case "w":
		return now.AddDays(num * 7), true
	case "M":
		return now.AddMonths(num), true
	case "y":
		return now.AddMonths(num * 12), true
	}
	return domain.Date{}, false
}
