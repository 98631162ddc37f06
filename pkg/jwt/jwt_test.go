package jwt

import (
	"testing"
	"time"

	"github.com/drchoshit/new-weekly-plan-maker/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("user-1", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken 실패: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 실패: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("UserID=user-1 기대, 실제=%s", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role=admin 기대, 실제=%s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType=access 기대, 실제=%s", claims.TokenType)
	}
	if claims.Issuer != "weekly-plan-maker" {
		t.Errorf("Issuer=weekly-plan-maker 기대, 실제=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 는 비어 있으면 안 된다")
	}
}

func TestGenerateRefreshToken_Default(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-1", "admin", false)
	if err != nil {
		t.Fatalf("GenerateRefreshToken 실패: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 실패: %v", err)
	}

	if claims.TokenType != "refresh" {
		t.Errorf("TokenType=refresh 기대, 실제=%s", claims.TokenType)
	}
	if claims.RememberMe != false {
		t.Error("RememberMe=false 기대")
	}

	// 만료 시간이 약 24h 인지 확인
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("기본 RefreshToken TTL 약 24h 기대, 실제=%v", ttl)
	}
}

func TestGenerateRefreshToken_RememberMe(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-1", "admin", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken(RememberMe) 실패: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 실패: %v", err)
	}

	if claims.RememberMe != true {
		t.Error("RememberMe=true 기대")
	}

	// 만료 시간이 약 7일인지 확인
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour || ttl > 8*24*time.Hour {
		t.Errorf("RememberMe RefreshToken TTL 약 7일 기대, 실제=%v", ttl)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("invalid.token.string")
	if err == nil {
		t.Error("잘못된 token 파싱은 에러를 반환해야 한다")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:      "different-secret-key",
		AccessTokenTTL: 15 * time.Minute,
	})

	token, _ := m1.GenerateAccessToken("user-1", "admin")
	_, err := m2.ParseToken(token)
	if err == nil {
		t.Error("다른 비밀키로 서명된 token 은 검증을 통과하면 안 된다")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	// 만료 검증을 위해 TTL 이 극히 짧은 manager 를 사용한다
	m := NewManager(&config.AuthConfig{
		JWTSecret:              "test-secret",
		AccessTokenTTL:         1 * time.Millisecond,
		RefreshTokenTTLDefault: 1 * time.Millisecond,
	})

	token, _ := m.GenerateAccessToken("user-1", "admin")
	time.Sleep(10 * time.Millisecond)

	_, err := m.ParseToken(token)
	if err == nil {
		t.Error("만료된 token 은 검증을 통과하면 안 된다")
	}
	if err != ErrTokenExpired {
		t.Errorf("ErrTokenExpired 기대, 실제: %v", err)
	}
}
