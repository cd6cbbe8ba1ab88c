// file: internals/features/school/timetable/dto/timetable_settings_dto.go
package dto

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	m "sekolahku_backend/internals/features/school/timetable/model"
	s "sekolahku_backend/internals/features/school/timetable/service"
)

// SlotConfig: bentuk JSON satu slot di kolom timetable_settings_slots.
type SlotConfig struct {
	Label string `json:"label" validate:"required"`
	Start string `json:"start" validate:"required"` // "HH:mm"
	End   string `json:"end"   validate:"required"`
}

// SlotsFromJSON mengubah kolom JSONB jadi slot display siap pakai assembler.
func SlotsFromJSON(raw datatypes.JSON) ([]s.Slot, error) {
	var cfgs []SlotConfig
	if err := json.Unmarshal(raw, &cfgs); err != nil {
		return nil, fmt.Errorf("timetable_settings_slots malformed: %w", err)
	}
	return slotsFromConfigs(cfgs)
}

func slotsFromConfigs(cfgs []SlotConfig) ([]s.Slot, error) {
	if len(cfgs) == 0 {
		return nil, errors.New("timetable_settings_slots must not be empty")
	}
	slots := make([]s.Slot, 0, len(cfgs))
	for _, cfg := range cfgs {
		start, err := s.ParseClockString(cfg.Start)
		if err != nil {
			return nil, fmt.Errorf("slot %q start: %w", cfg.Label, err)
		}
		end, err := s.ParseClockString(cfg.End)
		if err != nil {
			return nil, fmt.Errorf("slot %q end: %w", cfg.Label, err)
		}
		if start >= end {
			return nil, fmt.Errorf("slot %q: start must be before end", cfg.Label)
		}
		slots = append(slots, s.Slot{Label: cfg.Label, Start: start, End: end})
	}
	return slots, nil
}

/* =======================================================
   Upsert settings
   ======================================================= */

type UpsertTimetableSettingsRequest struct {
	TimetableSettingsClassID     *string      `json:"timetable_settings_class_id,omitempty" validate:"omitempty,uuid4"`
	TimetableSettingsDaysPerWeek int          `json:"timetable_settings_days_per_week"      validate:"required,gte=1,lte=7"`
	TimetableSettingsSlots       []SlotConfig `json:"timetable_settings_slots"              validate:"required,min=1,dive"`
	TimetableSettingsIsDefault   bool         `json:"timetable_settings_is_default"`
}

func (r *UpsertTimetableSettingsRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpsertTimetableSettingsRequest) ToModel() (*m.TimetableSettingsModel, error) {
	// parse dulu biar config cacat ketahuan sebelum disimpan
	if _, err := slotsFromConfigs(r.TimetableSettingsSlots); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(r.TimetableSettingsSlots)
	if err != nil {
		return nil, err
	}
	classID, err := uuidPtrFromString(r.TimetableSettingsClassID)
	if err != nil {
		return nil, fmt.Errorf("timetable_settings_class_id: %w", err)
	}
	return &m.TimetableSettingsModel{
		TimetableSettingsClassID:     classID,
		TimetableSettingsDaysPerWeek: r.TimetableSettingsDaysPerWeek,
		TimetableSettingsSlots:       datatypes.JSON(raw),
		TimetableSettingsIsDefault:   r.TimetableSettingsIsDefault,
	}, nil
}
