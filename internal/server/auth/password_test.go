package auth

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "hunter22" {
		t.Fatalf("digest must not equal plaintext")
	}

	if !CheckPassword("hunter22", digest) {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword("hunter23", digest) {
		t.Fatalf("expected single-character mutation to fail")
	}
	if CheckPassword("", digest) {
		t.Fatalf("expected empty password to fail")
	}
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password should differ (salting)")
	}
}
