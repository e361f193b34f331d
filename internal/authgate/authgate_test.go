package authgate

import "testing"

func TestVerifyAcceptsExactSecret(t *testing.T) {
	hash, err := Hash("abc")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := Verify("abc", hash); err != nil {
		t.Fatalf("exact secret rejected: %v", err)
	}
}

func TestVerifyRejectsNearMisses(t *testing.T) {
	hash, err := Hash("abc")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	for _, secret := range []string{"abc ", " abc", "ABC", "ab", ""} {
		if err := Verify(secret, hash); err != ErrSecretMismatch {
			t.Fatalf("secret %q: got %v, want ErrSecretMismatch", secret, err)
		}
	}
}

func TestVerifyRejectsEmptyHash(t *testing.T) {
	if err := Verify("abc", ""); err != ErrSecretMismatch {
		t.Fatalf("got %v, want ErrSecretMismatch", err)
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := Hash("abc")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := Hash("abc")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same secret should differ")
	}
}
