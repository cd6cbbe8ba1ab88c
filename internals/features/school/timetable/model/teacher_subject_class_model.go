// file: internals/features/school/timetable/model/teacher_subject_class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TeacherSubjectClassModel — map ke tabel teacher_subject_classes

   Alokasi longgar "guru boleh mengajar mapel X di kelas Y"
   dalam satu term. Bisa dibuat manual lebih dulu, atau dibuat
   otomatis saat entri timetable pertama untuk kombinasi itu
   disimpan (dalam transaksi yang sama dengan insert entrinya).
   ======================================================= */

type TeacherSubjectClassModel struct {
	TeacherSubjectClassID uuid.UUID `json:"teacher_subject_class_id" gorm:"type:uuid;primaryKey;column:teacher_subject_class_id;default:gen_random_uuid()"`

	TeacherSubjectClassTermID    uuid.UUID `json:"teacher_subject_class_term_id" gorm:"type:uuid;not null;uniqueIndex:uq_tsc_combo;column:teacher_subject_class_term_id"`
	TeacherSubjectClassTeacherID uuid.UUID `json:"teacher_subject_class_teacher_id" gorm:"type:uuid;not null;uniqueIndex:uq_tsc_combo;column:teacher_subject_class_teacher_id"`
	TeacherSubjectClassSubjectID uuid.UUID `json:"teacher_subject_class_subject_id" gorm:"type:uuid;not null;uniqueIndex:uq_tsc_combo;column:teacher_subject_class_subject_id"`
	TeacherSubjectClassClassID   uuid.UUID `json:"teacher_subject_class_class_id" gorm:"type:uuid;not null;uniqueIndex:uq_tsc_combo;column:teacher_subject_class_class_id"`

	TeacherSubjectClassCreatedAt time.Time      `json:"teacher_subject_class_created_at" gorm:"column:teacher_subject_class_created_at;not null;autoCreateTime"`
	TeacherSubjectClassDeletedAt gorm.DeletedAt `json:"teacher_subject_class_deleted_at" gorm:"column:teacher_subject_class_deleted_at;index"`
}

func (TeacherSubjectClassModel) TableName() string {
	return "teacher_subject_classes"
}
