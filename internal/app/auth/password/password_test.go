package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the raw password")
	}

	ok, err := Verify("secret123", hash)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("correct password must verify")
	}

	ok, err = Verify("wrong", hash)
	if err != nil {
		t.Fatalf("Verify wrong: %v", err)
	}
	if ok {
		t.Fatal("wrong password must not verify")
	}
}

func TestHash_Salted(t *testing.T) {
	h1, err := Hash("secret123")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := Hash("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ by salt")
	}
}
