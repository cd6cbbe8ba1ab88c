// file: internals/features/school/timetable/service/conflict.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Conflict Checker

   Memindai entri existing pada (term, hari) yang sama dan
   mengklasifikasikan tiap overlap ke dimensi resource yang
   tabrakan: teacher / class / room. Satu entri existing bisa
   muncul di beberapa dimensi sekaligus.

   Konflik adalah hasil normal (data, bukan error); error
   hanya untuk input kandidat yang cacat atau kegagalan store.
   ======================================================= */

type ConflictChecker struct {
	Store EntryStore
}

// validateCandidate: guard sebelum menyentuh store.
func validateCandidate(e *model.TimetableEntryModel) error {
	if e.TimetableEntryTermID == uuid.Nil {
		return &ValidationError{Field: "timetable_entry_term_id", Reason: "required"}
	}
	if e.TimetableEntryDayOfWeek < 1 || e.TimetableEntryDayOfWeek > 7 {
		return &ValidationError{Field: "timetable_entry_day_of_week", Reason: "must be between 1 and 7"}
	}
	if e.TimetableEntryTeacherID == uuid.Nil {
		return &ValidationError{Field: "timetable_entry_teacher_id", Reason: "required"}
	}
	if e.TimetableEntryClassID == uuid.Nil {
		return &ValidationError{Field: "timetable_entry_class_id", Reason: "required"}
	}
	if e.TimetableEntrySubjectID == uuid.Nil {
		return &ValidationError{Field: "timetable_entry_subject_id", Reason: "required"}
	}
	r := TimeRange{
		Start: ClockFromTime(e.TimetableEntryStartTime),
		End:   ClockFromTime(e.TimetableEntryEndTime),
	}
	if !r.Valid() {
		return &ValidationError{Field: "timetable_entry_end_time", Reason: "must be greater than start_time"}
	}
	return nil
}

// Check: laporan konflik terurut & deterministik untuk kandidat.
// excludeID dipakai jalur update supaya entri tidak bentrok dengan
// dirinya sendiri. List kosong = aman.
func (cc ConflictChecker) Check(ctx context.Context, candidate *model.TimetableEntryModel, excludeID *uuid.UUID) ([]Conflict, error) {
	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}

	existing, err := cc.Store.ListDayDetailed(ctx, candidate.TimetableEntryTermID, candidate.TimetableEntryDayOfWeek, excludeID)
	if err != nil {
		return nil, err
	}
	return classifyConflicts(candidate, existing), nil
}

// classifyConflicts: murni, tanpa side effect. Urutan hasil mengikuti
// urutan existing (store sudah mengurutkan by start_time, id).
func classifyConflicts(candidate *model.TimetableEntryModel, existing []EntryDetail) []Conflict {
	candRange := TimeRange{
		Start: ClockFromTime(candidate.TimetableEntryStartTime),
		End:   ClockFromTime(candidate.TimetableEntryEndTime),
	}

	var out []Conflict
	for _, det := range existing {
		if !candRange.Overlaps(det.Range()) {
			continue
		}
		if det.Entry.TimetableEntryTeacherID == candidate.TimetableEntryTeacherID {
			out = append(out, Conflict{
				Type:        ConflictTeacher,
				Entry:       det,
				Description: describeConflict(ConflictTeacher, det),
			})
		}
		if det.Entry.TimetableEntryClassID == candidate.TimetableEntryClassID {
			out = append(out, Conflict{
				Type:        ConflictClass,
				Entry:       det,
				Description: describeConflict(ConflictClass, det),
			})
		}
		// Room hanya dibandingkan kalau dua-duanya punya ruang.
		if candidate.TimetableEntryRoomID != nil && det.Entry.TimetableEntryRoomID != nil &&
			*candidate.TimetableEntryRoomID == *det.Entry.TimetableEntryRoomID {
			out = append(out, Conflict{
				Type:        ConflictRoom,
				Entry:       det,
				Description: describeConflict(ConflictRoom, det),
			})
		}
	}
	return out
}

func describeConflict(t ConflictType, det EntryDetail) string {
	r := det.Range()
	when := fmt.Sprintf("%s %s–%s", DayName(det.Entry.TimetableEntryDayOfWeek), r.Start, r.End)
	switch t {
	case ConflictTeacher:
		return fmt.Sprintf("Guru %s sudah mengajar %s di kelas %s, %s", det.TeacherName, det.SubjectName, det.ClassName, when)
	case ConflictClass:
		return fmt.Sprintf("Kelas %s sudah ada pelajaran %s dengan %s, %s", det.ClassName, det.SubjectName, det.TeacherName, when)
	case ConflictRoom:
		room := ""
		if det.RoomName != nil {
			room = *det.RoomName
		}
		return fmt.Sprintf("Ruang %s sudah dipakai %s (kelas %s), %s", room, det.SubjectName, det.ClassName, when)
	default:
		return when
	}
}
