package auth

import (
	"errors"
	"testing"
	"time"
)

func testConfig() JWTConfig {
	return JWTConfig{
		SecretKey:   "unit-test-secret-key-0123456789",
		TokenExp:    30 * time.Minute,
		TokenIssuer: "YourAppIssuer",
		Audience:    "YourAppAudience",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, expiresIn, err := svc.GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}
	if expiresIn != int((30 * time.Minute).Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, 1800)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error: %v", err)
	}
	if claims.Subject != "admin" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "admin")
	}
	if claims.ID == "" {
		t.Error("token has no jti claim")
	}
	if claims.Issuer != "YourAppIssuer" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "YourAppIssuer")
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "YourAppAudience" {
		t.Errorf("Audience = %v, want [YourAppAudience]", claims.Audience)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.TokenExp = -1 * time.Minute
	svc := NewJWTService(cfg)

	token, _, err := svc.GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateToken_WrongKey(t *testing.T) {
	svc := NewJWTService(testConfig())
	token, _, err := svc.GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	otherCfg := testConfig()
	otherCfg.SecretKey = "a-completely-different-secret-key"
	other := NewJWTService(otherCfg)

	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateToken_WrongIssuerOrAudience(t *testing.T) {
	svc := NewJWTService(testConfig())
	token, _, err := svc.GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	badIssuer := testConfig()
	badIssuer.TokenIssuer = "SomeOtherIssuer"
	if _, err := NewJWTService(badIssuer).ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("issuer mismatch: error = %v, want ErrInvalidToken", err)
	}

	badAudience := testConfig()
	badAudience.Audience = "SomeOtherAudience"
	if _, err := NewJWTService(badAudience).ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("audience mismatch: error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateAndExtractClaims_Empty(t *testing.T) {
	svc := NewJWTService(testConfig())

	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("empty token: error = %v, want ErrInvalidToken", err)
	}

	if _, err := svc.ValidateAndExtractClaims("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: error = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
