package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 21, 58, 0, 0, time.UTC)
}

func TestCalculatePeriod_ExactMonths(t *testing.T) {
	// Ровно три якорных месяца: 23.01 → 23.04.
	got := CalculatePeriod(date(2025, time.January, 23), date(2025, time.April, 23))
	assert.Equal(t, Breakdown{Years: 0, Months: 3, Days: 0}, got)
}

func TestCalculatePeriod_DayBorrow(t *testing.T) {
	// 23.01 → 20.02: дней меньше нуля, занимаем месяц
	// и добавляем 31 день января.
	got := CalculatePeriod(date(2025, time.January, 23), date(2025, time.February, 20))
	assert.Equal(t, Breakdown{Years: 0, Months: 0, Days: 28}, got)
}

func TestCalculatePeriod_MonthBorrow(t *testing.T) {
	// 23.11.2024 → 10.01.2025: двойное заимствование — сначала день,
	// потом год.
	got := CalculatePeriod(date(2024, time.November, 23), date(2025, time.January, 10))
	assert.Equal(t, Breakdown{Years: 0, Months: 1, Days: 18}, got)
}

func TestCalculatePeriod_OverAYear(t *testing.T) {
	got := CalculatePeriod(date(2025, time.January, 23), date(2026, time.March, 25))
	assert.Equal(t, Breakdown{Years: 1, Months: 2, Days: 2}, got)
}

func TestCalculatePeriod_Reconstruction(t *testing.T) {
	// Свойство: start + (годы, месяцы, дни) попадает в тот же день,
	// что и end. Проверяем на сетке дат с допустимыми якорными днями.
	start := date(2025, time.January, 23)
	ends := []time.Time{
		date(2025, time.February, 1),
		date(2025, time.February, 23),
		date(2025, time.March, 22),
		date(2025, time.July, 4),
		date(2026, time.January, 22),
		date(2027, time.December, 31),
	}

	for _, end := range ends {
		p := CalculatePeriod(start, end)

		require.GreaterOrEqual(t, p.Years, 0, "end=%s", end)
		require.GreaterOrEqual(t, p.Months, 0, "end=%s", end)
		require.LessOrEqual(t, p.Months, 11, "end=%s", end)
		require.GreaterOrEqual(t, p.Days, 0, "end=%s", end)

		rebuilt := start.AddDate(p.Years, p.Months, p.Days)
		y1, m1, d1 := rebuilt.Date()
		y2, m2, d2 := end.Date()
		assert.Equal(t, [3]int{y2, int(m2), d2}, [3]int{y1, int(m1), d1}, "end=%s", end)
	}
}

func TestCalculatePrizeFund_NegativeMonths(t *testing.T) {
	assert.Equal(t, 0, CalculatePrizeFund(-1, 5000, 5000, 100000))
}

func TestCalculatePrizeFund_FirstMonth(t *testing.T) {
	assert.Equal(t, 5000, CalculatePrizeFund(0, 5000, 5000, 100000))
}

func TestCalculatePrizeFund_LinearGrowthUntilCap(t *testing.T) {
	// Рекуррентность: каждый месяц добавляет increase, пока фонд
	// не упрётся в потолок, после чего остаётся плоским.
	for n := 1; n <= 30; n++ {
		prev := CalculatePrizeFund(n-1, 5000, 5000, 100000)
		cur := CalculatePrizeFund(n, 5000, 5000, 100000)

		if prev < 100000 {
			assert.Equal(t, prev+5000, cur, "n=%d", n)
		} else {
			assert.Equal(t, 100000, cur, "n=%d", n)
		}
	}
}

func TestCalculatePrizeFund_CapReached(t *testing.T) {
	// 5000 + 19×5000 = 100000 — ровно потолок.
	assert.Equal(t, 100000, CalculatePrizeFund(19, 5000, 5000, 100000))
	assert.Equal(t, 100000, CalculatePrizeFund(20, 5000, 5000, 100000))
	assert.Equal(t, 100000, CalculatePrizeFund(1000, 5000, 5000, 100000))
}

func TestCalculatePrizeFund_NoCap(t *testing.T) {
	// max <= 0 отключает потолок.
	assert.Equal(t, 5005000, CalculatePrizeFund(1000, 5000, 5000, 0))
}
