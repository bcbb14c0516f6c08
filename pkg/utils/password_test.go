package utils

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if hash == "p1" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPasswordHash("p1", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
