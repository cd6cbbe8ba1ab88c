// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`

	TeacherName  string  `json:"teacher_name" gorm:"type:text;not null;column:teacher_name"`
	TeacherNIP   *string `json:"teacher_nip,omitempty" gorm:"type:varchar(30);uniqueIndex;column:teacher_nip"` // nomor induk pegawai
	TeacherEmail *string `json:"teacher_email,omitempty" gorm:"type:text;column:teacher_email"`

	TeacherIsActive bool `json:"teacher_is_active" gorm:"type:boolean;not null;default:true;column:teacher_is_active"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
