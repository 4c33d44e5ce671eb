package auth

import (
	"testing"
	"time"
)

func TestMintAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	tok, err := MintToken("sess-1", 42, secret, time.Hour)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.SessionID != "sess-1" || claims.UserID != 42 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseToken_Rejections(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("empty token", func(t *testing.T) {
		if _, err := ParseToken("", secret); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := MintToken("sess-1", 42, secret, time.Hour)
		if err != nil {
			t.Fatalf("mint failed: %v", err)
		}
		if _, err := ParseToken(tok, []byte("other")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := MintToken("sess-1", 42, secret, -time.Minute)
		if err != nil {
			t.Fatalf("mint failed: %v", err)
		}
		if _, err := ParseToken(tok, secret); err == nil {
			t.Fatalf("expected error")
		}
	})
}
