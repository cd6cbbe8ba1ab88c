// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID uuid.UUID `json:"class_id" gorm:"type:uuid;primaryKey;column:class_id;default:gen_random_uuid()"`

	ClassName  string `json:"class_name" gorm:"type:text;not null;uniqueIndex;column:class_name"` // "7A", "8B"
	ClassGrade int    `json:"class_grade" gorm:"type:int;not null;column:class_grade"`            // tingkat (7, 8, 9, ...)

	// Wali kelas (opsional)
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id,omitempty" gorm:"type:uuid;index;column:class_homeroom_teacher_id"`

	ClassIsActive bool `json:"class_is_active" gorm:"type:boolean;not null;default:true;column:class_is_active"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;not null;autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at" gorm:"column:class_deleted_at;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}
