// file: internals/features/school/timetable/model/timetable_entry_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TimetableEntryModel — map ke tabel timetable_entries

   Satu entri = satu sesi mengajar mingguan:
   (guru × kelas × mapel × ruang × hari × jam) dalam satu term.
   Ruang nullable (sesi daring / di luar sekolah).

   Catatan skema: tabel ini membawa exclusion constraint
   btree_gist per dimensi (teacher/class/room) atas
   (term, day_of_week, timerange) sebagai jaring pengaman
   paling bawah; pengecekan bentrok tetap dilakukan eksplisit
   di service supaya bisa dilaporkan terklasifikasi.
   ======================================================= */

type TimetableEntryModel struct {
	// PK
	TimetableEntryID uuid.UUID `json:"timetable_entry_id" gorm:"type:uuid;primaryKey;column:timetable_entry_id;default:gen_random_uuid()"`

	// Scope: satu entri selalu milik tepat satu term
	TimetableEntryTermID uuid.UUID `json:"timetable_entry_term_id" gorm:"type:uuid;not null;index;column:timetable_entry_term_id"`

	// Pola mingguan
	TimetableEntryDayOfWeek int       `json:"timetable_entry_day_of_week" gorm:"type:int;not null;column:timetable_entry_day_of_week"` // 1..7 (Senin..Minggu)
	TimetableEntryStartTime time.Time `json:"timetable_entry_start_time" gorm:"type:time;not null;column:timetable_entry_start_time"`
	TimetableEntryEndTime   time.Time `json:"timetable_entry_end_time" gorm:"type:time;not null;column:timetable_entry_end_time"`

	// Dimensi resource
	TimetableEntryTeacherID uuid.UUID  `json:"timetable_entry_teacher_id" gorm:"type:uuid;not null;index;column:timetable_entry_teacher_id"`
	TimetableEntryClassID   uuid.UUID  `json:"timetable_entry_class_id" gorm:"type:uuid;not null;index;column:timetable_entry_class_id"`
	TimetableEntrySubjectID uuid.UUID  `json:"timetable_entry_subject_id" gorm:"type:uuid;not null;column:timetable_entry_subject_id"`
	TimetableEntryRoomID    *uuid.UUID `json:"timetable_entry_room_id,omitempty" gorm:"type:uuid;index;column:timetable_entry_room_id"`

	// Timestamps
	TimetableEntryCreatedAt time.Time      `json:"timetable_entry_created_at" gorm:"column:timetable_entry_created_at;not null;autoCreateTime"`
	TimetableEntryUpdatedAt time.Time      `json:"timetable_entry_updated_at" gorm:"column:timetable_entry_updated_at;not null;autoUpdateTime"`
	TimetableEntryDeletedAt gorm.DeletedAt `json:"timetable_entry_deleted_at" gorm:"column:timetable_entry_deleted_at;index"`
}

func (TimetableEntryModel) TableName() string {
	return "timetable_entries"
}

// BeforeSave: mirror CHECK constraint di DB.
func (m *TimetableEntryModel) BeforeSave(tx *gorm.DB) error {
	if m.TimetableEntryDayOfWeek < 1 || m.TimetableEntryDayOfWeek > 7 {
		return errors.New("timetable_entry_day_of_week must be between 1 and 7")
	}
	if !m.TimetableEntryEndTime.After(m.TimetableEntryStartTime) {
		return errors.New("timetable_entry_end_time must be greater than start_time")
	}
	if m.TimetableEntryTermID == uuid.Nil {
		return errors.New("timetable_entry_term_id is required")
	}
	if m.TimetableEntryTeacherID == uuid.Nil || m.TimetableEntryClassID == uuid.Nil || m.TimetableEntrySubjectID == uuid.Nil {
		return errors.New("teacher, class, and subject references are required")
	}
	return nil
}
