// file: internals/features/school/timetable/service/store_mem_test.go
package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   memStore — EntryStore in-memory untuk test service layer,
   lengkap dengan rollback sederhana di Atomic.
   ======================================================= */

type memStore struct {
	mu           sync.Mutex
	entries      map[uuid.UUID]model.TimetableEntryModel
	teacherNames map[uuid.UUID]string
	classNames   map[uuid.UUID]string
	subjectNames map[uuid.UUID]string
	roomNames    map[uuid.UUID]string
	allocations  map[string]struct{}
	attendance   map[uuid.UUID]int64
}

func newMemStore() *memStore {
	return &memStore{
		entries:      map[uuid.UUID]model.TimetableEntryModel{},
		teacherNames: map[uuid.UUID]string{},
		classNames:   map[uuid.UUID]string{},
		subjectNames: map[uuid.UUID]string{},
		roomNames:    map[uuid.UUID]string{},
		allocations:  map[string]struct{}{},
		attendance:   map[uuid.UUID]int64{},
	}
}

func allocKey(termID, teacherID, subjectID, classID uuid.UUID) string {
	return fmt.Sprintf("%s|%s|%s|%s", termID, teacherID, subjectID, classID)
}

func (s *memStore) detail(e model.TimetableEntryModel) EntryDetail {
	det := EntryDetail{
		Entry:       e,
		TeacherName: s.teacherNames[e.TimetableEntryTeacherID],
		ClassName:   s.classNames[e.TimetableEntryClassID],
		SubjectName: s.subjectNames[e.TimetableEntrySubjectID],
	}
	if e.TimetableEntryRoomID != nil {
		if name, ok := s.roomNames[*e.TimetableEntryRoomID]; ok {
			det.RoomName = &name
		}
	}
	return det
}

func sortDetails(out []EntryDetail) {
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Entry, out[j].Entry
		if a.TimetableEntryDayOfWeek != b.TimetableEntryDayOfWeek {
			return a.TimetableEntryDayOfWeek < b.TimetableEntryDayOfWeek
		}
		if !a.TimetableEntryStartTime.Equal(b.TimetableEntryStartTime) {
			return a.TimetableEntryStartTime.Before(b.TimetableEntryStartTime)
		}
		return a.TimetableEntryID.String() < b.TimetableEntryID.String()
	})
}

func (s *memStore) ListDayDetailed(_ context.Context, termID uuid.UUID, dayOfWeek int, excludeID *uuid.UUID) ([]EntryDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []EntryDetail{}
	for _, e := range s.entries {
		if e.TimetableEntryTermID != termID || e.TimetableEntryDayOfWeek != dayOfWeek {
			continue
		}
		if excludeID != nil && e.TimetableEntryID == *excludeID {
			continue
		}
		out = append(out, s.detail(e))
	}
	sortDetails(out)
	return out, nil
}

func (s *memStore) ListTermDetailed(_ context.Context, termID uuid.UUID, f ViewFilter) ([]EntryDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []EntryDetail{}
	for _, e := range s.entries {
		if e.TimetableEntryTermID != termID {
			continue
		}
		if f.TeacherID != nil && e.TimetableEntryTeacherID != *f.TeacherID {
			continue
		}
		if f.ClassID != nil && e.TimetableEntryClassID != *f.ClassID {
			continue
		}
		if f.RoomID != nil && (e.TimetableEntryRoomID == nil || *e.TimetableEntryRoomID != *f.RoomID) {
			continue
		}
		out = append(out, s.detail(e))
	}
	sortDetails(out)
	return out, nil
}

func (s *memStore) Get(_ context.Context, id uuid.UUID) (*model.TimetableEntryModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, &NotFoundError{Resource: "timetable entry", ID: id}
	}
	cp := e
	return &cp, nil
}

func (s *memStore) Insert(_ context.Context, e *model.TimetableEntryModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.TimetableEntryID == uuid.Nil {
		e.TimetableEntryID = uuid.New()
	}
	s.entries[e.TimetableEntryID] = *e
	return nil
}

func (s *memStore) Save(_ context.Context, e *model.TimetableEntryModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[e.TimetableEntryID] = *e
	return nil
}

func (s *memStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return &NotFoundError{Resource: "timetable entry", ID: id}
	}
	delete(s.entries, id)
	return nil
}

func (s *memStore) EnsureAllocation(_ context.Context, termID, teacherID, subjectID, classID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := allocKey(termID, teacherID, subjectID, classID)
	if _, ok := s.allocations[key]; ok {
		return false, nil
	}
	s.allocations[key] = struct{}{}
	return true, nil
}

func (s *memStore) DeleteAttendanceByEntry(_ context.Context, entryID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.attendance[entryID]
	delete(s.attendance, entryID)
	return removed, nil
}

// Atomic: snapshot state → jalankan fn → restore kalau error.
func (s *memStore) Atomic(_ context.Context, fn func(EntryStore) error) error {
	s.mu.Lock()
	entriesSnap := make(map[uuid.UUID]model.TimetableEntryModel, len(s.entries))
	for k, v := range s.entries {
		entriesSnap[k] = v
	}
	allocSnap := make(map[string]struct{}, len(s.allocations))
	for k := range s.allocations {
		allocSnap[k] = struct{}{}
	}
	attSnap := make(map[uuid.UUID]int64, len(s.attendance))
	for k, v := range s.attendance {
		attSnap[k] = v
	}
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.entries = entriesSnap
		s.allocations = allocSnap
		s.attendance = attSnap
		s.mu.Unlock()
		return err
	}
	return nil
}

var _ EntryStore = (*memStore)(nil)

/* =======================================================
   Fixture builders
   ======================================================= */

type fixture struct {
	store    *memStore
	termID   uuid.UUID
	teacherA uuid.UUID // Bu Siti
	teacherB uuid.UUID // Pak Budi
	classA   uuid.UUID // 7A
	classB   uuid.UUID // 8B
	subjMath uuid.UUID
	subjBio  uuid.UUID
	roomLab  uuid.UUID
	roomR201 uuid.UUID
}

func newFixture() *fixture {
	f := &fixture{
		store:    newMemStore(),
		termID:   uuid.New(),
		teacherA: uuid.New(),
		teacherB: uuid.New(),
		classA:   uuid.New(),
		classB:   uuid.New(),
		subjMath: uuid.New(),
		subjBio:  uuid.New(),
		roomLab:  uuid.New(),
		roomR201: uuid.New(),
	}
	f.store.teacherNames[f.teacherA] = "Siti"
	f.store.teacherNames[f.teacherB] = "Budi"
	f.store.classNames[f.classA] = "7A"
	f.store.classNames[f.classB] = "8B"
	f.store.subjectNames[f.subjMath] = "Matematika"
	f.store.subjectNames[f.subjBio] = "Biologi"
	f.store.roomNames[f.roomLab] = "Lab IPA"
	f.store.roomNames[f.roomR201] = "R-201"
	return f
}

func clockTime(t *testing.T, s string) time.Time {
	t.Helper()
	c, err := ParseClockString(s)
	require.NoError(t, err)
	return c.ToTime()
}

// entry bikin kandidat dengan default fixture; override lewat argumen.
func (f *fixture) entry(t *testing.T, dow int, start, end string, teacherID, classID, subjectID uuid.UUID, roomID *uuid.UUID) *model.TimetableEntryModel {
	t.Helper()
	return &model.TimetableEntryModel{
		TimetableEntryTermID:    f.termID,
		TimetableEntryDayOfWeek: dow,
		TimetableEntryStartTime: clockTime(t, start),
		TimetableEntryEndTime:   clockTime(t, end),
		TimetableEntryTeacherID: teacherID,
		TimetableEntryClassID:   classID,
		TimetableEntrySubjectID: subjectID,
		TimetableEntryRoomID:    roomID,
	}
}

func (f *fixture) seed(t *testing.T, e *model.TimetableEntryModel) uuid.UUID {
	t.Helper()
	require.NoError(t, f.store.Insert(context.Background(), e))
	return e.TimetableEntryID
}
