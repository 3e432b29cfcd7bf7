package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/rcampos/vinylstore-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário da loja
type User struct {
	ID        string
	Email     valueobjects.Email
	FirstName string
	LastName  string
	Role      Role
	Birthdate *time.Time
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// FullName retorna o nome completo do usuário
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.FirstName == "" {
		return errors.New("first name is required")
	}

	if u.Role != RoleAdmin && u.Role != RoleUser {
		return errors.New("invalid role")
	}

	return nil
}
