// file: internals/features/school/timetable/service/store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attModel "sekolahku_backend/internals/features/school/attendance/model"
	"sekolahku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   EntryStore — abstraksi record store untuk engine.

   Engine tidak pernah menyentuh gorm langsung; semua akses
   lewat interface ini supaya conflict checker & assembler
   bisa diuji dengan store in-memory.
   ======================================================= */

// EntryDetail = entri + nama-nama resource untuk ditampilkan
// (deskripsi konflik & payload sel grid mingguan).
type EntryDetail struct {
	Entry       model.TimetableEntryModel `json:"entry"`
	TeacherName string                    `json:"teacher_name"`
	ClassName   string                    `json:"class_name"`
	SubjectName string                    `json:"subject_name"`
	RoomName    *string                   `json:"room_name,omitempty"`
}

func (d EntryDetail) Range() TimeRange {
	return TimeRange{
		Start: ClockFromTime(d.Entry.TimetableEntryStartTime),
		End:   ClockFromTime(d.Entry.TimetableEntryEndTime),
	}
}

// ViewFilter: tepat satu dimensi diisi saat membangun view mingguan;
// semua nil berarti seluruh term (dipakai listing admin).
type ViewFilter struct {
	TeacherID *uuid.UUID
	ClassID   *uuid.UUID
	RoomID    *uuid.UUID
}

type EntryStore interface {
	// ListDayDetailed: semua entri hidup pada (term, day_of_week),
	// opsional mengecualikan satu id (dipakai update agar entri tidak
	// bentrok dengan dirinya sendiri).
	ListDayDetailed(ctx context.Context, termID uuid.UUID, dayOfWeek int, excludeID *uuid.UUID) ([]EntryDetail, error)

	// ListTermDetailed: semua entri hidup dalam term, opsional pre-filter
	// satu dimensi. Read-side untuk assembler & listing.
	ListTermDetailed(ctx context.Context, termID uuid.UUID, f ViewFilter) ([]EntryDetail, error)

	Get(ctx context.Context, id uuid.UUID) (*model.TimetableEntryModel, error)
	Insert(ctx context.Context, e *model.TimetableEntryModel) error
	Save(ctx context.Context, e *model.TimetableEntryModel) error
	Delete(ctx context.Context, id uuid.UUID) error

	// EnsureAllocation membuat baris teacher_subject_classes untuk kombinasi
	// (term, teacher, subject, class) kalau belum ada. Harus dipanggil dalam
	// unit atomik yang sama dengan insert entrinya.
	EnsureAllocation(ctx context.Context, termID, teacherID, subjectID, classID uuid.UUID) (created bool, err error)

	// DeleteAttendanceByEntry meng-cascade record kehadiran milik satu entri
	// dan mengembalikan jumlah baris yang terhapus.
	DeleteAttendanceByEntry(ctx context.Context, entryID uuid.UUID) (int64, error)

	// Atomic menjalankan fn dalam satu transaksi; kalau fn balikin error,
	// seluruh perubahan di-rollback.
	Atomic(ctx context.Context, fn func(EntryStore) error) error
}

/* =======================================================
   GormEntryStore — implementasi produksi di atas PostgreSQL.
   ======================================================= */

type GormEntryStore struct {
	DB *gorm.DB
}

func NewGormEntryStore(db *gorm.DB) *GormEntryStore {
	return &GormEntryStore{DB: db}
}

// row hasil join entri + nama resource
type entryRow struct {
	model.TimetableEntryModel
	TeacherName string  `gorm:"column:teacher_name"`
	ClassName   string  `gorm:"column:class_name"`
	SubjectName string  `gorm:"column:subject_name"`
	RoomName    *string `gorm:"column:room_name"`
}

func (s *GormEntryStore) detailedQuery(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Model(&model.TimetableEntryModel{}).
		Select("timetable_entries.*, teachers.teacher_name, classes.class_name, subjects.subject_name, rooms.room_name").
		Joins("JOIN teachers ON teachers.teacher_id = timetable_entries.timetable_entry_teacher_id").
		Joins("JOIN classes ON classes.class_id = timetable_entries.timetable_entry_class_id").
		Joins("JOIN subjects ON subjects.subject_id = timetable_entries.timetable_entry_subject_id").
		Joins("LEFT JOIN rooms ON rooms.room_id = timetable_entries.timetable_entry_room_id")
}

func rowsToDetails(rows []entryRow) []EntryDetail {
	out := make([]EntryDetail, 0, len(rows))
	for _, r := range rows {
		out = append(out, EntryDetail{
			Entry:       r.TimetableEntryModel,
			TeacherName: r.TeacherName,
			ClassName:   r.ClassName,
			SubjectName: r.SubjectName,
			RoomName:    r.RoomName,
		})
	}
	return out
}

func (s *GormEntryStore) ListDayDetailed(ctx context.Context, termID uuid.UUID, dayOfWeek int, excludeID *uuid.UUID) ([]EntryDetail, error) {
	q := s.detailedQuery(ctx).
		Where("timetable_entry_term_id = ? AND timetable_entry_day_of_week = ?", termID, dayOfWeek)
	if excludeID != nil {
		q = q.Where("timetable_entry_id <> ?", *excludeID)
	}

	var rows []entryRow
	if err := q.
		Order("timetable_entry_start_time ASC, timetable_entry_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToDetails(rows), nil
}

func (s *GormEntryStore) ListTermDetailed(ctx context.Context, termID uuid.UUID, f ViewFilter) ([]EntryDetail, error) {
	q := s.detailedQuery(ctx).
		Where("timetable_entry_term_id = ?", termID)
	if f.TeacherID != nil {
		q = q.Where("timetable_entry_teacher_id = ?", *f.TeacherID)
	}
	if f.ClassID != nil {
		q = q.Where("timetable_entry_class_id = ?", *f.ClassID)
	}
	if f.RoomID != nil {
		q = q.Where("timetable_entry_room_id = ?", *f.RoomID)
	}

	var rows []entryRow
	if err := q.
		Order("timetable_entry_day_of_week ASC, timetable_entry_start_time ASC, timetable_entry_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToDetails(rows), nil
}

func (s *GormEntryStore) Get(ctx context.Context, id uuid.UUID) (*model.TimetableEntryModel, error) {
	var m model.TimetableEntryModel
	err := s.DB.WithContext(ctx).
		Where("timetable_entry_id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "timetable entry", ID: id}
		}
		return nil, err
	}
	return &m, nil
}

func (s *GormEntryStore) Insert(ctx context.Context, e *model.TimetableEntryModel) error {
	return s.DB.WithContext(ctx).Create(e).Error
}

func (s *GormEntryStore) Save(ctx context.Context, e *model.TimetableEntryModel) error {
	return s.DB.WithContext(ctx).Save(e).Error
}

func (s *GormEntryStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("timetable_entry_id = ?", id).
		Delete(&model.TimetableEntryModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "timetable entry", ID: id}
	}
	return nil
}

func (s *GormEntryStore) EnsureAllocation(ctx context.Context, termID, teacherID, subjectID, classID uuid.UUID) (bool, error) {
	alloc := model.TeacherSubjectClassModel{
		TeacherSubjectClassTermID:    termID,
		TeacherSubjectClassTeacherID: teacherID,
		TeacherSubjectClassSubjectID: subjectID,
		TeacherSubjectClassClassID:   classID,
	}
	res := s.DB.WithContext(ctx).
		Where("teacher_subject_class_term_id = ? AND teacher_subject_class_teacher_id = ? AND teacher_subject_class_subject_id = ? AND teacher_subject_class_class_id = ?",
			termID, teacherID, subjectID, classID).
		FirstOrCreate(&alloc)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormEntryStore) DeleteAttendanceByEntry(ctx context.Context, entryID uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("attendance_record_timetable_entry_id = ?", entryID).
		Delete(&attModel.AttendanceRecordModel{})
	return res.RowsAffected, res.Error
}

func (s *GormEntryStore) Atomic(ctx context.Context, fn func(EntryStore) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormEntryStore{DB: tx})
	})
}
