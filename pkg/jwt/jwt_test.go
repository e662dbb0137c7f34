package jwt

import (
	"errors"
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	tok, err := GenerateToken(secret, 7, TypeAccess, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := ParseToken(secret, TypeAccess, tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("user id = %d", claims.UserID)
	}
}

func TestParseRejectsWrongType(t *testing.T) {
	tok, _ := GenerateToken(secret, 7, TypeRefresh, time.Minute)
	if _, err := ParseToken(secret, TypeAccess, tok); !errors.Is(err, ErrTokenType) {
		t.Fatalf("err = %v, want ErrTokenType", err)
	}
}

func TestParseRejectsExpiredAndForeign(t *testing.T) {
	expired, _ := GenerateToken(secret, 7, TypeAccess, -time.Minute)
	if _, err := ParseToken(secret, TypeAccess, expired); err == nil {
		t.Error("expired token accepted")
	}
	foreign, _ := GenerateToken([]byte("other"), 7, TypeAccess, time.Minute)
	if _, err := ParseToken(secret, TypeAccess, foreign); err == nil {
		t.Error("token signed with another secret accepted")
	}
}
