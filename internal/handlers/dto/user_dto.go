package dto

import (
	"time"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	"github.com/rcampos/vinylstore-backend/internal/services"
)

const birthdateLayout = "2006-01-02"

// UpdateUserProfileRequest representa uma atualização parcial do perfil
type UpdateUserProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1,max=50"`
	LastName  *string `json:"lastName" binding:"omitempty,max=50"`
	Birthdate *string `json:"birthdate" binding:"omitempty,datetime=2006-01-02"`
	Avatar    *string `json:"avatar" binding:"omitempty,url"`
}

// ToUpdateProfileInput converte a requisição para o input do serviço.
// O birthdate já passou pela validação de formato no binding.
func (r *UpdateUserProfileRequest) ToUpdateProfileInput() services.UpdateProfileInput {
	input := services.UpdateProfileInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		AvatarURL: r.Avatar,
	}

	if r.Birthdate != nil {
		if t, err := time.Parse(birthdateLayout, *r.Birthdate); err == nil {
			input.Birthdate = &t
		}
	}

	return input
}

// UserProfileResponse representa a resposta do perfil de um usuário
type UserProfileResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      string     `json:"role"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	Avatar    *string    `json:"avatar,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ToUserProfileResponse converte uma entidade User para UserProfileResponse
func ToUserProfileResponse(user *entities.User) UserProfileResponse {
	return UserProfileResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		Birthdate: user.Birthdate,
		Avatar:    user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
