package config

import (
	"os"
	"testing"
)

// unsetForTest убирает переменную на время теста и возвращает её обратно.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	value, existed := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if existed {
			_ = os.Setenv(key, value)
		}
	})
}
