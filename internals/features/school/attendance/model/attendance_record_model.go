// file: internals/features/school/attendance/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecordModel — kehadiran siswa per pertemuan, diikat ke entri
// timetable. Saat entri dihapus, record di sini ikut di-cascade dan
// jumlahnya dilaporkan ke pemanggil.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `json:"attendance_record_id" gorm:"type:uuid;primaryKey;column:attendance_record_id;default:gen_random_uuid()"`

	AttendanceRecordTimetableEntryID uuid.UUID `json:"attendance_record_timetable_entry_id" gorm:"type:uuid;not null;index;column:attendance_record_timetable_entry_id"`
	AttendanceRecordStudentID        uuid.UUID `json:"attendance_record_student_id" gorm:"type:uuid;not null;index;column:attendance_record_student_id"`

	AttendanceRecordDate   time.Time `json:"attendance_record_date" gorm:"type:date;not null;column:attendance_record_date"`
	AttendanceRecordStatus string    `json:"attendance_record_status" gorm:"type:text;not null;default:'present';column:attendance_record_status"` // present|absent|late|excused

	AttendanceRecordCreatedAt time.Time      `json:"attendance_record_created_at" gorm:"column:attendance_record_created_at;not null;autoCreateTime"`
	AttendanceRecordDeletedAt gorm.DeletedAt `json:"attendance_record_deleted_at" gorm:"column:attendance_record_deleted_at;index"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
