package auth

import (
	"errors"
	"testing"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	manager := NewTokenManager("test-secret")

	t.Run("token emitido carrega id e email", func(t *testing.T) {
		token, err := manager.Issue("user-1", "ana@example.com")
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		claims, err := manager.Verify(token)
		if err != nil {
			t.Fatalf("falha ao verificar token: %v", err)
		}

		if claims.UserID != "user-1" {
			t.Errorf("esperava userId 'user-1', obteve '%s'", claims.UserID)
		}
		if claims.Email != "ana@example.com" {
			t.Errorf("esperava email 'ana@example.com', obteve '%s'", claims.Email)
		}
	})

	t.Run("expiração é de uma hora", func(t *testing.T) {
		token, err := manager.Issue("user-1", "ana@example.com")
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		claims, err := manager.Verify(token)
		if err != nil {
			t.Fatalf("falha ao verificar token: %v", err)
		}

		ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
		if ttl != tokenTTL {
			t.Errorf("esperava TTL de %v, obteve %v", tokenTTL, ttl)
		}
	})

	t.Run("token assinado com outro segredo é rejeitado", func(t *testing.T) {
		other := NewTokenManager("other-secret")
		token, err := other.Issue("user-1", "ana@example.com")
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		if _, err := manager.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("esperava ErrInvalidToken, obteve %v", err)
		}
	})

	t.Run("token malformado é rejeitado", func(t *testing.T) {
		if _, err := manager.Verify("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("esperava ErrInvalidToken, obteve %v", err)
		}
	})
}
