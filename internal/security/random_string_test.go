package security

import (
	"strings"
	"testing"
)

func TestRandomStringRejectsBadArguments(t *testing.T) {
	if _, err := RandomString(-3, "abc"); err == nil {
		t.Fatal("expected an error for a negative length")
	}
	if _, err := RandomString(5, ""); err == nil {
		t.Fatal("expected an error for an empty alphabet")
	}
}

func TestRandomStringZeroLength(t *testing.T) {
	got, err := RandomString(0, "abc")
	if err != nil {
		t.Fatalf("RandomString(0, ...) returned error: %v", err)
	}
	if got != "" {
		t.Fatalf("RandomString(0, ...) = %q, want empty", got)
	}
}

func TestRandomStringStaysInsideAlphabet(t *testing.T) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	got, err := RandomString(48, alphabet)
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	if len(got) != 48 {
		t.Fatalf("len = %d, want 48", len(got))
	}
	for _, char := range got {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("character %q is outside the alphabet", char)
		}
	}
}

func TestRandomStringSingleCharacterAlphabet(t *testing.T) {
	got, err := RandomString(6, "Z")
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	if got != "ZZZZZZ" {
		t.Fatalf("got %q, want %q", got, "ZZZZZZ")
	}
}
