package user

import "strings"

// NormalizePhone приводит телефон к каноническому виду: только цифры,
// 11 знаков, ведущая 7. Ведущая 8 у 11-значного номера заменяется на 7,
// 10-значный номер без кода страны дополняется семеркой.
// Функция идемпотентна: NormalizePhone(NormalizePhone(x)) == NormalizePhone(x).
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 11 && digits[0] == '8':
		return "7" + digits[1:]
	case len(digits) == 10 && digits[0] == '9':
		return "7" + digits
	default:
		return digits
	}
}
