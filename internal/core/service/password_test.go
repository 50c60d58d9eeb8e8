package service

import "testing"

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "pw1" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Verify("pw1", hash) {
		t.Fatalf("verify rejected the original password")
	}
	if h.Verify("pw2", hash) {
		t.Fatalf("verify accepted a wrong password")
	}
}

func TestPasswordHasher_SaltUniqueness(t *testing.T) {
	h := NewPasswordHasher(4)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password are identical")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatalf("one of the hashes does not verify")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher(0)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("verify accepted a malformed hash")
	}
	if h.Verify("anything", "") {
		t.Fatalf("verify accepted an empty hash")
	}
}

func TestNewPasswordHasher_CostClamped(t *testing.T) {
	h := NewPasswordHasher(-1)

	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash with clamped cost failed: %v", err)
	}
	if !h.Verify("pw", hash) {
		t.Fatalf("clamped-cost hash does not verify")
	}
}
