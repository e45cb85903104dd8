package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("SLOT_UNAVAILABLE", "Slot unavailable", http.StatusConflict)
		if e.HTTPStatus != http.StatusConflict {
			t.Fatalf("expected 409, got %d", e.HTTPStatus)
		}
		if e.Error() != "SLOT_UNAVAILABLE: Slot unavailable" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
	})

	t.Run("wrapped cause is hidden from clients", func(t *testing.T) {
		cause := errors.New("dynamodb timeout")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to unwrap")
		}
		body := e.ToHTTPError()
		if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
