package pkg

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	t.Run("length", func(t *testing.T) {
		for _, n := range []int{0, 1, 4, 5, 32} {
			if got := RandomString(n, false); len(got) != n {
				t.Fatalf("expected length %d, got %q", n, got)
			}
		}
	})

	t.Run("numbers only", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			s := RandomString(5, true)
			for _, c := range s {
				if c < '0' || c > '9' {
					t.Fatalf("expected digits only, got %q", s)
				}
			}
		}
	})

	t.Run("alphanumeric charset", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			s := RandomString(8, false)
			if strings.ToUpper(s) != s {
				t.Fatalf("expected uppercase alphanumerics, got %q", s)
			}
		}
	})
}

func TestToTitle(t *testing.T) {
	cases := map[string]string{
		"labor":        "Labor",
		"materials":    "Materials",
		"equipment":    "Equipment",
		"stone pavers": "Stone Pavers",
		"BOBCAT":       "Bobcat",
		"":             "",
	}
	for in, want := range cases {
		if got := ToTitle(in); got != want {
			t.Fatalf("ToTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request.", http.StatusBadRequest)
		if e.Error() != "Invalid request." {
			t.Fatalf("unexpected message: %q", e.Error())
		}
		if e.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("unexpected status: %d", e.HTTPStatus)
		}
		body := e.ToHTTPError()
		if body.Code != "INVALID_REQUEST" || body.Message != "Invalid request." {
			t.Fatalf("unexpected http error: %+v", body)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("dynamodb unavailable")
		e := NewDomainError("INTERNAL_ERROR", "Something went wrong", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if e.ToHTTPError().Message != "Something went wrong" {
			t.Fatalf("internal cause must not leak: %+v", e.ToHTTPError())
		}
	})
}
