package errors

import "testing"

func TestErrorHelpers(t *testing.T) {
	err := NewInvalidArgument("bad")
	if !IsInvalidArgument(err) {
		t.Fatal("expected invalid argument")
	}

	wrapped := WrapInternal(err, "ctx")
	if !IsInternal(wrapped) {
		t.Fatal("expected internal")
	}
}

func TestIsInvalidToken_CoversWholeTokenTaxonomy(t *testing.T) {
	for _, err := range []error{
		ErrInvalidToken,
		ErrWrongTokenType,
		ErrMissingSubject,
		ErrMalformedSubject,
		ErrTokenRevoked,
	} {
		if !IsInvalidToken(err) {
			t.Fatalf("IsInvalidToken(%v) = false", err)
		}
	}

	if IsInvalidToken(ErrInvalidCredentials) {
		t.Fatal("credentials error must not count as a token error")
	}
}
