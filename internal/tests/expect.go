package tests

import (
	"fmt"
	"testing"
)

func Equal[T comparable](tb testing.TB, got, expected T, format string, args ...any) {
	tb.Helper()

	if got != expected {
		output := fmt.Sprintf(format, args...)
		output += fmt.Sprintf("\nreceived: %v\nexpected: %v", got, expected)
		tb.Fatal(output)
	}
}

func Expect(tb testing.TB, cond bool, format string, args ...any) {
	tb.Helper()

	if !cond {
		tb.Fatalf(format, args...)
	}
}
