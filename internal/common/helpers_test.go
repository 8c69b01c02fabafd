package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	assert.Equal(t, "year", PluralizeYears(1))
	assert.Equal(t, "years", PluralizeYears(0))
	assert.Equal(t, "years", PluralizeYears(2))

	assert.Equal(t, "month", PluralizeMonths(1))
	assert.Equal(t, "months", PluralizeMonths(11))

	assert.Equal(t, "day", PluralizeDays(1))
	assert.Equal(t, "days", PluralizeDays(28))
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2025, time.January, 23, 21, 58, 0, 0, time.UTC)

	assert.Equal(t, "23.01.2025 21:58", FormatDateTime(ts))
	assert.Equal(t, "23.01.2025", FormatDate(ts))
	assert.Equal(t, "21:58", FormatTime(ts))
}
