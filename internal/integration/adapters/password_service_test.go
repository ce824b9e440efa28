package adapters

import "testing"

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("dashboard-secret")
	if err != nil {
		t.Fatalf("unexpected hashing error: %v", err)
	}
	if hash == "dashboard-secret" {
		t.Fatal("hash must not equal the plaintext password")
	}

	t.Run("correct password verifies", func(t *testing.T) {
		if err := service.VerifyPassword("dashboard-secret", hash); err != nil {
			t.Errorf("unexpected verification error: %v", err)
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		if err := service.VerifyPassword("wrong", hash); err == nil {
			t.Error("expected verification to fail")
		}
	})
}
