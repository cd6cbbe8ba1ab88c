// file: internals/features/school/timetable/dto/timetable_entry_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
	s "sekolahku_backend/internals/features/school/timetable/service"
)

/* =======================================================
   Util & parsing
   ======================================================= */

func parseClock(str string) (time.Time, error) {
	c, err := s.ParseClockString(str)
	if err != nil {
		return time.Time{}, err
	}
	return c.ToTime(), nil
}

func uuidPtrFromString(str *string) (*uuid.UUID, error) {
	if str == nil {
		return nil, nil
	}
	ss := strings.TrimSpace(*str)
	if ss == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ss)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return &id, nil
}

/* =======================================================
   Request DTOs
   - Jam dikirim string ("HH:mm" / "HH:mm:ss") biar simpel dari FE
   ======================================================= */

type CreateTimetableEntryRequest struct {
	// Required
	TimetableEntryTermID    string `json:"timetable_entry_term_id"     validate:"required,uuid4"`
	TimetableEntryDayOfWeek int    `json:"timetable_entry_day_of_week" validate:"required,gte=1,lte=7"`
	TimetableEntryStartTime string `json:"timetable_entry_start_time"  validate:"required"`
	TimetableEntryEndTime   string `json:"timetable_entry_end_time"    validate:"required"`
	TimetableEntryTeacherID string `json:"timetable_entry_teacher_id"  validate:"required,uuid4"`
	TimetableEntryClassID   string `json:"timetable_entry_class_id"    validate:"required,uuid4"`
	TimetableEntrySubjectID string `json:"timetable_entry_subject_id"  validate:"required,uuid4"`

	// Optional — sesi tanpa ruang (daring / luar sekolah) boleh kosong
	TimetableEntryRoomID *string `json:"timetable_entry_room_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *CreateTimetableEntryRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateTimetableEntryRequest) ToModel() (*m.TimetableEntryModel, error) {
	termID, _ := uuid.Parse(r.TimetableEntryTermID)
	teacherID, _ := uuid.Parse(r.TimetableEntryTeacherID)
	classID, _ := uuid.Parse(r.TimetableEntryClassID)
	subjectID, _ := uuid.Parse(r.TimetableEntrySubjectID)

	startTime, err := parseClock(r.TimetableEntryStartTime)
	if err != nil {
		return nil, fmt.Errorf("timetable_entry_start_time: %w", err)
	}
	endTime, err := parseClock(r.TimetableEntryEndTime)
	if err != nil {
		return nil, fmt.Errorf("timetable_entry_end_time: %w", err)
	}
	if !endTime.After(startTime) {
		return nil, errors.New("timetable_entry_end_time must be greater than start_time")
	}

	roomID, err := uuidPtrFromString(r.TimetableEntryRoomID)
	if err != nil {
		return nil, fmt.Errorf("timetable_entry_room_id: %w", err)
	}

	return &m.TimetableEntryModel{
		TimetableEntryTermID:    termID,
		TimetableEntryDayOfWeek: r.TimetableEntryDayOfWeek,
		TimetableEntryStartTime: startTime,
		TimetableEntryEndTime:   endTime,
		TimetableEntryTeacherID: teacherID,
		TimetableEntryClassID:   classID,
		TimetableEntrySubjectID: subjectID,
		TimetableEntryRoomID:    roomID,
	}, nil
}

/* =======================================================
   PATCH — semua optional, hanya field non-nil yang di-apply.
   Term sengaja tidak bisa dipindah lewat patch.
   ======================================================= */

type PatchTimetableEntryRequest struct {
	TimetableEntryDayOfWeek *int    `json:"timetable_entry_day_of_week,omitempty" validate:"omitempty,gte=1,lte=7"`
	TimetableEntryStartTime *string `json:"timetable_entry_start_time,omitempty"`
	TimetableEntryEndTime   *string `json:"timetable_entry_end_time,omitempty"`
	TimetableEntryTeacherID *string `json:"timetable_entry_teacher_id,omitempty" validate:"omitempty,uuid4"`
	TimetableEntryClassID   *string `json:"timetable_entry_class_id,omitempty"   validate:"omitempty,uuid4"`
	TimetableEntrySubjectID *string `json:"timetable_entry_subject_id,omitempty" validate:"omitempty,uuid4"`
	// Pointer-ke-pointer semantics lewat string: "" = lepas ruang, absen = biarkan
	TimetableEntryRoomID *string `json:"timetable_entry_room_id,omitempty" validate:"omitempty,uuid4|len=0"`
}

func (p *PatchTimetableEntryRequest) Validate(v *validator.Validate) error {
	return v.Struct(p)
}

// ApplyPatch meng-apply field non-nil ke dst. Semua kegagalan parse dan
// cek silang dikembalikan sebagai *service.ValidationError supaya pemanggil
// (lewat TimetableService.Update) bisa memetakannya ke input cacat, bukan
// fault internal.
func (p *PatchTimetableEntryRequest) ApplyPatch(dst *m.TimetableEntryModel) error {
	if p.TimetableEntryDayOfWeek != nil {
		if *p.TimetableEntryDayOfWeek < 1 || *p.TimetableEntryDayOfWeek > 7 {
			return &s.ValidationError{Field: "timetable_entry_day_of_week", Reason: "must be between 1 and 7"}
		}
		dst.TimetableEntryDayOfWeek = *p.TimetableEntryDayOfWeek
	}

	if p.TimetableEntryStartTime != nil {
		t, err := parseClock(*p.TimetableEntryStartTime)
		if err != nil {
			return &s.ValidationError{Field: "timetable_entry_start_time", Reason: err.Error()}
		}
		dst.TimetableEntryStartTime = t
	}
	if p.TimetableEntryEndTime != nil {
		t, err := parseClock(*p.TimetableEntryEndTime)
		if err != nil {
			return &s.ValidationError{Field: "timetable_entry_end_time", Reason: err.Error()}
		}
		dst.TimetableEntryEndTime = t
	}
	if p.TimetableEntryStartTime != nil || p.TimetableEntryEndTime != nil {
		if !dst.TimetableEntryEndTime.After(dst.TimetableEntryStartTime) {
			return &s.ValidationError{Field: "timetable_entry_end_time", Reason: "must be greater than start_time"}
		}
	}

	if p.TimetableEntryTeacherID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*p.TimetableEntryTeacherID))
		if err != nil {
			return &s.ValidationError{Field: "timetable_entry_teacher_id", Reason: err.Error()}
		}
		dst.TimetableEntryTeacherID = id
	}
	if p.TimetableEntryClassID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*p.TimetableEntryClassID))
		if err != nil {
			return &s.ValidationError{Field: "timetable_entry_class_id", Reason: err.Error()}
		}
		dst.TimetableEntryClassID = id
	}
	if p.TimetableEntrySubjectID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*p.TimetableEntrySubjectID))
		if err != nil {
			return &s.ValidationError{Field: "timetable_entry_subject_id", Reason: err.Error()}
		}
		dst.TimetableEntrySubjectID = id
	}
	if p.TimetableEntryRoomID != nil {
		idp, err := uuidPtrFromString(p.TimetableEntryRoomID)
		if err != nil {
			return &s.ValidationError{Field: "timetable_entry_room_id", Reason: err.Error()}
		}
		dst.TimetableEntryRoomID = idp // nil kalau dikirim "" → lepas ruang
	}

	return nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type TimetableEntryResponse struct {
	TimetableEntryID        uuid.UUID  `json:"timetable_entry_id"`
	TimetableEntryTermID    uuid.UUID  `json:"timetable_entry_term_id"`
	TimetableEntryDayOfWeek int        `json:"timetable_entry_day_of_week"`
	TimetableEntryDayName   string     `json:"timetable_entry_day_name"`
	TimetableEntryStartTime string     `json:"timetable_entry_start_time"` // "HH:mm"
	TimetableEntryEndTime   string     `json:"timetable_entry_end_time"`
	TimetableEntryTeacherID uuid.UUID  `json:"timetable_entry_teacher_id"`
	TimetableEntryClassID   uuid.UUID  `json:"timetable_entry_class_id"`
	TimetableEntrySubjectID uuid.UUID  `json:"timetable_entry_subject_id"`
	TimetableEntryRoomID    *uuid.UUID `json:"timetable_entry_room_id,omitempty"`
	TimetableEntryCreatedAt time.Time  `json:"timetable_entry_created_at"`
	TimetableEntryUpdatedAt time.Time  `json:"timetable_entry_updated_at"`
}

func NewTimetableEntryResponse(src *m.TimetableEntryModel) TimetableEntryResponse {
	return TimetableEntryResponse{
		TimetableEntryID:        src.TimetableEntryID,
		TimetableEntryTermID:    src.TimetableEntryTermID,
		TimetableEntryDayOfWeek: src.TimetableEntryDayOfWeek,
		TimetableEntryDayName:   s.DayName(src.TimetableEntryDayOfWeek),
		TimetableEntryStartTime: s.ClockFromTime(src.TimetableEntryStartTime).String(),
		TimetableEntryEndTime:   s.ClockFromTime(src.TimetableEntryEndTime).String(),
		TimetableEntryTeacherID: src.TimetableEntryTeacherID,
		TimetableEntryClassID:   src.TimetableEntryClassID,
		TimetableEntrySubjectID: src.TimetableEntrySubjectID,
		TimetableEntryRoomID:    src.TimetableEntryRoomID,
		TimetableEntryCreatedAt: src.TimetableEntryCreatedAt,
		TimetableEntryUpdatedAt: src.TimetableEntryUpdatedAt,
	}
}

// ConflictItemResponse: satu bentrok terklasifikasi untuk dirender FE.
type ConflictItemResponse struct {
	Type        string                 `json:"type"` // teacher|class|room
	Description string                 `json:"description"`
	Entry       TimetableEntryResponse `json:"entry"`
}

func NewConflictItemResponses(conflicts []s.Conflict) []ConflictItemResponse {
	out := make([]ConflictItemResponse, 0, len(conflicts))
	for _, c := range conflicts {
		entry := c.Entry.Entry
		out = append(out, ConflictItemResponse{
			Type:        string(c.Type),
			Description: c.Description,
			Entry:       NewTimetableEntryResponse(&entry),
		})
	}
	return out
}
