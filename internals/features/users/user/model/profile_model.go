package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileModel liga um user a uma escola com um papel (admin/professor/aluno).
// Único vivo por user+escola.
type ProfileModel struct {
	ProfileID       uuid.UUID `gorm:"column:profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"profile_id"`
	ProfileUserID   uuid.UUID `gorm:"column:profile_user_id;type:uuid;not null;index:idx_profiles_user_escola,priority:1" json:"profile_user_id"`
	ProfileEscolaID uuid.UUID `gorm:"column:profile_escola_id;type:uuid;not null;index:idx_profiles_user_escola,priority:2" json:"profile_escola_id"`

	ProfileRole         string  `gorm:"column:profile_role;type:varchar(20);not null" json:"profile_role"`
	ProfileNomeCompleto string  `gorm:"column:profile_nome_completo;size:160;not null" json:"profile_nome_completo"`
	ProfileTelefone     *string `gorm:"column:profile_telefone;size:30" json:"profile_telefone,omitempty"`
	ProfileFotoURL      *string `gorm:"column:profile_foto_url;type:text" json:"profile_foto_url,omitempty"`

	ProfileCreatedAt time.Time      `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt *time.Time     `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at,omitempty"`
	ProfileDeletedAt gorm.DeletedAt `gorm:"column:profile_deleted_at;index" json:"profile_deleted_at,omitempty"`
}

func (ProfileModel) TableName() string { return "profiles" }
