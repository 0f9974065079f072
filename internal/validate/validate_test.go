package validate_test

import (
	"testing"

	"buildsurge/internal/validate"
)

func TestName(t *testing.T) {
	if _, ok := validate.Name("  "); ok {
		t.Fatal("blank name accepted")
	}
	s, ok := validate.Name("  Jane Doe ")
	if !ok || s != "Jane Doe" {
		t.Fatalf("want trimmed Jane Doe, got %q ok=%v", s, ok)
	}
}

func TestEmail(t *testing.T) {
	good := []string{"jane@example.com", "a.b+c@mail.co", "x@y.io"}
	for _, e := range good {
		if _, ok := validate.Email(e); !ok {
			t.Errorf("%q rejected", e)
		}
	}
	bad := []string{"", "plainaddress", "no-at.example.com", "user@nodot", "two words@x.com"}
	for _, e := range bad {
		if _, ok := validate.Email(e); ok {
			t.Errorf("%q accepted", e)
		}
	}
}

func TestPhone(t *testing.T) {
	if s, ok := validate.Phone("(555) 123-4567"); !ok || s != "(555) 123-4567" {
		t.Fatalf("formatted 10-digit phone rejected: %q ok=%v", s, ok)
	}
	if _, ok := validate.Phone("555-1234"); ok {
		t.Fatal("7-digit phone accepted")
	}
	if _, ok := validate.Phone("+1 301 555 0142"); !ok {
		t.Fatal("11-digit international phone rejected")
	}
	if _, ok := validate.Phone(""); ok {
		t.Fatal("empty phone accepted")
	}
}
