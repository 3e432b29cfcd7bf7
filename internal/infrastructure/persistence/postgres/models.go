package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID        string     `gorm:"type:uuid;primary_key"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName string     `gorm:"type:varchar(100);not null"`
	LastName  string     `gorm:"type:varchar(100)"`
	Role      string     `gorm:"type:varchar(50);not null;default:'user'"`
	Birthdate *time.Time `gorm:"type:date"`
	AvatarURL *string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// VinylRecordModel é o model GORM para discos do catálogo.
// O índice único composto (name, author_name) garante a política de
// duplicidade do catálogo no nível do banco.
type VinylRecordModel struct {
	ID          string    `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_records_name_author"`
	AuthorName  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_records_name_author"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:numeric(10,2);not null"`
	ImageURL    string    `gorm:"type:varchar(500)"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (VinylRecordModel) TableName() string {
	return "vinyl_records"
}

func (m *VinylRecordModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ReviewModel é o model GORM para reviews. As FKs caem em cascata quando
// o usuário ou o disco é removido.
type ReviewModel struct {
	ID            string           `gorm:"type:uuid;primary_key"`
	Content       string           `gorm:"type:text;not null"`
	Score         int              `gorm:"not null"`
	UserID        string           `gorm:"type:uuid;not null;index"`
	User          UserModel        `gorm:"constraint:OnDelete:CASCADE"`
	VinylRecordID string           `gorm:"type:uuid;not null;index"`
	VinylRecord   VinylRecordModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time        `gorm:"autoCreateTime"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

func (m *ReviewModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// PurchaseModel é o model GORM para compras confirmadas. SessionID é a
// chave de reconciliação: o índice único impede que entregas repetidas
// do mesmo webhook criem duas compras.
type PurchaseModel struct {
	ID            string           `gorm:"type:uuid;primary_key"`
	UserID        string           `gorm:"type:uuid;not null;index"`
	User          UserModel        `gorm:"constraint:OnDelete:CASCADE"`
	VinylRecordID string           `gorm:"type:uuid;not null;index"`
	VinylRecord   VinylRecordModel `gorm:"constraint:OnDelete:CASCADE"`
	SessionID     string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt     time.Time        `gorm:"autoCreateTime"`
}

func (PurchaseModel) TableName() string {
	return "purchases"
}

func (m *PurchaseModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
