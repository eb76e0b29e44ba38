package utils

import "time"

// Now - текущее время в UTC с точностью до микросекунд:
// такую точность сохраняет Postgres, и значение не меняется после сохранения.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
