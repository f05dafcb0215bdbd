package utils

import "testing"

func TestComparePassword(t *testing.T) {
	hashed, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePassword(string(hashed), "secret"); err != nil {
		t.Fatalf("matching password rejected: %v", err)
	}
	if err := ComparePassword(string(hashed), "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestComparePassword_CorruptStoredHashRejected(t *testing.T) {
	// A mangled stored hash fails with an error that is not
	// ErrMismatchedHashAndPassword; it must still reject the login.
	if err := ComparePassword("not-a-bcrypt-hash", "secret"); err == nil {
		t.Fatal("corrupt stored hash accepted")
	}
	if err := ComparePassword("", "secret"); err == nil {
		t.Fatal("empty stored hash accepted")
	}
}
