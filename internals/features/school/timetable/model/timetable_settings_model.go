// file: internals/features/school/timetable/model/timetable_settings_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   TimetableSettingsModel — map ke tabel timetable_settings

   Konfigurasi grid tampilan jadwal: rentang hari yang
   ditampilkan dan daftar slot display. Slot disimpan sebagai
   JSONB (array {label, start, end}) supaya sekolah bebas
   menentukan lebar blok (per jam, per 45 menit, dengan
   istirahat, dst) tanpa migrasi skema.
   ======================================================= */

type TimetableSettingsModel struct {
	TimetableSettingsID uuid.UUID `json:"timetable_settings_id" gorm:"type:uuid;primaryKey;column:timetable_settings_id;default:gen_random_uuid()"`

	// Opsional per kelas; NULL = default sekolah
	TimetableSettingsClassID *uuid.UUID `json:"timetable_settings_class_id,omitempty" gorm:"type:uuid;index;column:timetable_settings_class_id"`

	// 5 = Senin..Jumat, 7 = seminggu penuh
	TimetableSettingsDaysPerWeek int `json:"timetable_settings_days_per_week" gorm:"type:int;not null;default:5;column:timetable_settings_days_per_week"`

	// Array slot display: [{"label":"Jam ke-1","start":"07:30","end":"08:30"}, ...]
	TimetableSettingsSlots datatypes.JSON `json:"timetable_settings_slots" gorm:"type:jsonb;not null;column:timetable_settings_slots"`

	TimetableSettingsIsDefault bool `json:"timetable_settings_is_default" gorm:"type:boolean;not null;default:false;column:timetable_settings_is_default"`

	TimetableSettingsCreatedAt time.Time      `json:"timetable_settings_created_at" gorm:"column:timetable_settings_created_at;not null;autoCreateTime"`
	TimetableSettingsUpdatedAt time.Time      `json:"timetable_settings_updated_at" gorm:"column:timetable_settings_updated_at;not null;autoUpdateTime"`
	TimetableSettingsDeletedAt gorm.DeletedAt `json:"timetable_settings_deleted_at" gorm:"column:timetable_settings_deleted_at;index"`
}

func (TimetableSettingsModel) TableName() string {
	return "timetable_settings"
}
