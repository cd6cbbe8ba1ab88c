// file: internals/features/school/timetable/service/timetable_service_test.go
package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/timetable/model"
)

func TestServiceCreate(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)
	ctx := context.Background()

	e := f.entry(t, 1, "08:00", "09:00", f.teacherA, f.classA, f.subjMath, &f.roomLab)
	id, err := svc.Create(ctx, e)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	// entri tersimpan
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, f.teacherA, got.TimetableEntryTeacherID)

	// side effect: alokasi guru-mapel-kelas ikut terbentuk
	_, ok := f.store.allocations[allocKey(f.termID, f.teacherA, f.subjMath, f.classA)]
	assert.True(t, ok, "create harus memastikan baris alokasi ada")
}

func TestServiceCreateAllocationIdempotent(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)
	ctx := context.Background()

	_, err := svc.Create(ctx, f.entry(t, 1, "08:00", "09:00", f.teacherA, f.classA, f.subjMath, nil))
	require.NoError(t, err)

	// sesi kedua kombinasi sama, jam beda → tidak ada alokasi duplikat
	_, err = svc.Create(ctx, f.entry(t, 1, "10:00", "11:00", f.teacherA, f.classA, f.subjMath, nil))
	require.NoError(t, err)

	assert.Len(t, f.store.allocations, 1)
}

func TestServiceCreateConflictRollsBack(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)
	ctx := context.Background()

	_, err := svc.Create(ctx, f.entry(t, 1, "08:00", "09:00", f.teacherA, f.classA, f.subjMath, nil))
	require.NoError(t, err)

	// bentrok guru → ditolak, state tidak berubah
	_, err = svc.Create(ctx, f.entry(t, 1, "08:30", "09:30", f.teacherA, f.classB, f.subjBio, nil))
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.NotEmpty(t, cErr.Conflicts)

	assert.Len(t, f.store.entries, 1, "entri konflik tidak boleh ikut tersimpan")
	assert.Len(t, f.store.allocations, 1, "alokasi kombinasi baru tidak boleh bocor")
}

func TestServiceCreateConcurrentOverlap(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)
	ctx := context.Background()

	// dua create konkuren dengan jam overlap untuk guru yang sama:
	// tepat satu yang boleh menang
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(ctx, f.entry(t, 1, "08:00", "09:00", f.teacherA, f.classA, f.subjMath, nil))
		}(i)
	}
	wg.Wait()

	var conflicts int
	for _, err := range errs {
		if err != nil {
			var cErr *ConflictError
			require.ErrorAs(t, err, &cErr)
			conflicts++
		}
	}
	assert.Equal(t, 1, conflicts, "tepat satu dari dua create harus kalah")
	assert.Len(t, f.store.entries, 1)
}

func TestServiceUpdateMovesEntry(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)
	ctx := context.Background()

	id, err := svc.Create(ctx, f.entry(t, 1, "08:00", "09:00", f.teacherA, f.classA, f.subjMath, nil))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, id, func(e *model.TimetableEntryModel) error {
		e.TimetableEntryDayOfWeek = 2
		e.TimetableEntryStartTime = clockTime(t, "10:00")
		e.TimetableEntryEndTime = clockTime(t, "11:00")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.TimetableEntryDayOfWeek)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TimetableEntryDayOfWeek)
}

func TestServiceUpdateSelfOverlapAllowed(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)
	ctx := context.Background()

	id, err := svc.Create(ctx, f.entry(t, 1, "08:00", "09:00", f.teacherA, f.classA, f.subjMath, nil))
	require.NoError(t, err)

	// geser 30 menit: masih overlap dengan posisi lamanya sendiri → harus boleh
	_, err = svc.Update(ctx, id, func(e *model.TimetableEntryModel) error {
		e.TimetableEntryStartTime = clockTime(t, "08:30")
		e.TimetableEntryEndTime = clockTime(t, "09:30")
		return nil
	})
	require.NoError(t, err)
}

func TestServiceUpdateConflictLeavesStateUnchanged(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)
	ctx := context.Background()

	_, err := svc.Create(ctx, f.entry(t, 1, "08:00", "09:00", f.teacherA, f.classA, f.subjMath, nil))
	require.NoError(t, err)
	id, err := svc.Create(ctx, f.entry(t, 1, "10:00", "11:00", f.teacherA, f.classA, f.subjBio, nil))
	require.NoError(t, err)

	// coba geser entri kedua menabrak entri pertama
	_, err = svc.Update(ctx, id, func(e *model.TimetableEntryModel) error {
		e.TimetableEntryStartTime = clockTime(t, "08:30")
		e.TimetableEntryEndTime = clockTime(t, "09:30")
		return nil
	})
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, clockTime(t, "10:00"), got.TimetableEntryStartTime, "update gagal tidak boleh menyentuh state")
}

func TestServiceUpdateCannotMoveTerm(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)
	ctx := context.Background()

	id, err := svc.Create(ctx, f.entry(t, 1, "08:00", "09:00", f.teacherA, f.classA, f.subjMath, nil))
	require.NoError(t, err)

	otherTerm := uuid.New()
	updated, err := svc.Update(ctx, id, func(e *model.TimetableEntryModel) error {
		e.TimetableEntryTermID = otherTerm
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, f.termID, updated.TimetableEntryTermID, "term id tidak bisa dipindah lewat patch")
}

func TestServiceUpdateNotFound(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)

	_, err := svc.Update(context.Background(), uuid.New(), func(e *model.TimetableEntryModel) error {
		return nil
	})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestServiceDeleteCascadesAttendance(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)
	ctx := context.Background()

	id, err := svc.Create(ctx, f.entry(t, 1, "08:00", "09:00", f.teacherA, f.classA, f.subjMath, nil))
	require.NoError(t, err)
	f.store.attendance[id] = 12

	summary, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, summary.EntryID)
	assert.Equal(t, int64(12), summary.RemovedAttendance)

	_, err = svc.Get(ctx, id)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestServiceDeleteThenRecreateSameSlot(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)
	ctx := context.Background()

	id, err := svc.Create(ctx, f.entry(t, 1, "08:00", "09:00", f.teacherA, f.classA, f.subjMath, nil))
	require.NoError(t, err)

	_, err = svc.Delete(ctx, id)
	require.NoError(t, err)

	// slot yang sudah dilepas harus bisa dipakai lagi
	_, err = svc.Create(ctx, f.entry(t, 1, "08:00", "09:00", f.teacherB, f.classA, f.subjBio, nil))
	require.NoError(t, err)
}

func TestServiceDeleteNotFound(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)

	_, err := svc.Delete(context.Background(), uuid.New())
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestServiceCheckConflictsDryRun(t *testing.T) {
	f := newFixture()
	svc := NewTimetableService(f.store)
	ctx := context.Background()

	_, err := svc.Create(ctx, f.entry(t, 1, "08:00", "09:00", f.teacherA, f.classA, f.subjMath, nil))
	require.NoError(t, err)

	cand := f.entry(t, 1, "08:30", "09:30", f.teacherA, f.classB, f.subjBio, nil)
	conflicts, err := svc.CheckConflicts(ctx, cand, nil)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)

	// dry-run tidak menulis apa pun
	assert.Len(t, f.store.entries, 1)
}
