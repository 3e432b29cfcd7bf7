package valueobjects

import (
	"errors"
	"testing"
)

func TestNewEmail(t *testing.T) {
	t.Run("aceita email válido", func(t *testing.T) {
		email, err := NewEmail("ana@example.com")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if email.String() != "ana@example.com" {
			t.Errorf("esperava 'ana@example.com', obteve '%s'", email.String())
		}
	})

	t.Run("normaliza para lowercase e remove espaços", func(t *testing.T) {
		email, err := NewEmail("  Ana.Lima@Example.COM ")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if email.String() != "ana.lima@example.com" {
			t.Errorf("esperava email normalizado, obteve '%s'", email.String())
		}
	})

	t.Run("rejeita formatos inválidos", func(t *testing.T) {
		invalid := []string{
			"",
			"plainaddress",
			"@no-local.com",
			"no-domain@",
			"spaces in@email.com",
			"missing@tld",
		}

		for _, input := range invalid {
			if _, err := NewEmail(input); !errors.Is(err, ErrInvalidEmail) {
				t.Errorf("esperava ErrInvalidEmail para '%s', obteve %v", input, err)
			}
		}
	})
}
