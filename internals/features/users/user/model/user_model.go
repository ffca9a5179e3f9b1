package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel representa a conta de acesso (credenciais). O vínculo com a
// escola e o papel ficam no ProfileModel.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:50;not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserSenha    string    `gorm:"column:user_senha;not null" json:"-"`
	UserGoogleID *string   `gorm:"column:user_google_id;size:255;unique" json:"-"`
	UserIsOwner  bool      `gorm:"column:user_is_owner;not null;default:false" json:"user_is_owner"`
	UserAtivo    bool      `gorm:"column:user_ativo;not null;default:true" json:"user_ativo"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
