// Package common содержит общие утилиты, используемые во всём проекте:
// английская плюрализация и форматирование дат для сообщений бота.
package common

import "time"

// PluralizeYears возвращает правильную форму слова «year» для числа n.
//
// Примеры:
//
//	PluralizeYears(1) → "year"
//	PluralizeYears(3) → "years"
func PluralizeYears(n int) string {
	if n == 1 {
		return "year"
	}
	return "years"
}

// PluralizeMonths возвращает правильную форму слова «month».
func PluralizeMonths(n int) string {
	if n == 1 {
		return "month"
	}
	return "months"
}

// PluralizeDays возвращает правильную форму слова «day».
func PluralizeDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

// FormatDateTime форматирует время в формат "02.01.2006 15:04"
// (день.месяц.год часы:минуты). Используется в статусных сообщениях.
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// FormatDate форматирует только дату: "02.01.2006".
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatTime форматирует только время: "15:04".
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}
