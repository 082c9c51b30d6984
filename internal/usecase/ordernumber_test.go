package usecase

import (
	"strings"
	"testing"
	"time"
)

func TestNewOrderNumber(t *testing.T) {
	t.Cleanup(func() { orderNumberNow = time.Now })
	fixed := time.UnixMilli(1725000123456)
	orderNumberNow = func() time.Time { return fixed }

	number := NewOrderNumber()
	if len(number) != 11 {
		t.Fatalf("expected 11 characters, got %q", number)
	}
	if !strings.HasPrefix(number, "123456") {
		t.Fatalf("expected clock prefix 123456, got %q", number)
	}
	for _, r := range number[6:] {
		if !strings.ContainsRune(orderNumberAlphabet, r) {
			t.Fatalf("suffix character %q outside alphabet", r)
		}
	}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewOrderNumber()] = true
	}
	if len(seen) < 2 {
		t.Fatal("suffix does not vary")
	}
}
