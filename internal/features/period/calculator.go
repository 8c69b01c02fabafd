// Package period — чистые функции календарной арифметики:
// разбивка прошедшего срока на годы/месяцы/дни и расчёт призового фонда.
package period

import "time"

// Breakdown — календарная разбивка прошедшего срока.
// Инварианты при end >= start: Years >= 0, Months в [0,11], Days >= 0.
type Breakdown struct {
	Years  int
	Months int
	Days   int
}

// CalculatePeriod считает календарную (не «365 дней в году») разницу
// между start и end.
//
// Алгоритм: покомпонентная разность год/месяц/день с заимствованием.
// Если дней получилось меньше нуля — занимаем месяц и добавляем число
// дней месяца, предшествующего месяцу end. Если после этого месяцев
// меньше нуля — занимаем год.
//
// При end < start результат осмыслен только для проверки знака:
// функция намеренно ничего не ограничивает, граница «период ещё
// не начался» проверяется вызывающим кодом.
func CalculatePeriod(start, end time.Time) Breakdown {
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	days := end.Day() - start.Day()

	if days < 0 {
		months--
		// День 0 текущего месяца = последний день предыдущего.
		prevMonthDays := time.Date(end.Year(), end.Month(), 0, 0, 0, 0, 0, end.Location()).Day()
		days += prevMonthDays
	}

	if months < 0 {
		years--
		months += 12
	}

	return Breakdown{Years: years, Months: months, Days: days}
}

// CalculatePrizeFund возвращает размер призового фонда для индекса
// месяца months (0 = первый завершённый якорный месяц).
//
// Фонд растёт линейно: base + months × increase, но не выше max.
// max <= 0 отключает потолок. Для отрицательного индекса фонд равен 0.
func CalculatePrizeFund(months, base, increase, max int) int {
	if months < 0 {
		return 0
	}

	fund := base + months*increase
	if max > 0 && fund > max {
		return max
	}
	return fund
}
