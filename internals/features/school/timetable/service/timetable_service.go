// file: internals/features/school/timetable/service/timetable_service.go
package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   TimetableService — satu-satunya permukaan mutasi entri.

   Check-then-write diserialisasi per term: transaksi store
   + mutex in-process keyed term id, supaya dua create
   konkuren yang rangenya overlap tidak sama-sama melihat
   "tidak ada konflik" lalu sama-sama commit. Read-side
   (dry-run check, assembler) tidak pernah mengambil lock.
   ======================================================= */

type DeletionSummary struct {
	EntryID           uuid.UUID `json:"entry_id"`
	RemovedAttendance int64     `json:"removed_attendance"`
}

type TimetableService struct {
	store   EntryStore
	checker ConflictChecker

	termLocks sync.Map // term uuid → *sync.Mutex
}

func NewTimetableService(store EntryStore) *TimetableService {
	return &TimetableService{
		store:   store,
		checker: ConflictChecker{Store: store},
	}
}

func (s *TimetableService) lockTerm(termID uuid.UUID) func() {
	v, _ := s.termLocks.LoadOrStore(termID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Create: cek konflik → pastikan alokasi guru-mapel-kelas ada → insert,
// ketiganya dalam satu unit atomik. Balikin id entri baru.
func (s *TimetableService) Create(ctx context.Context, e *model.TimetableEntryModel) (uuid.UUID, error) {
	if err := validateCandidate(e); err != nil {
		return uuid.Nil, err
	}

	unlock := s.lockTerm(e.TimetableEntryTermID)
	defer unlock()

	err := s.store.Atomic(ctx, func(tx EntryStore) error {
		conflicts, err := (ConflictChecker{Store: tx}).Check(ctx, e, nil)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}

		if _, err := tx.EnsureAllocation(ctx,
			e.TimetableEntryTermID,
			e.TimetableEntryTeacherID,
			e.TimetableEntrySubjectID,
			e.TimetableEntryClassID,
		); err != nil {
			return err
		}
		return tx.Insert(ctx, e)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return e.TimetableEntryID, nil
}

// Update: fetch → apply patch (closure dari DTO) → re-check dengan
// pengecualian id sendiri → save. Term tidak bisa dipindah lewat patch;
// field lain (hari, jam, guru, kelas, mapel, ruang) bebas diubah parsial.
// State tidak berubah kalau ada konflik.
func (s *TimetableService) Update(ctx context.Context, id uuid.UUID, apply func(*model.TimetableEntryModel) error) (*model.TimetableEntryModel, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.lockTerm(existing.TimetableEntryTermID)
	defer unlock()

	var updated *model.TimetableEntryModel
	err = s.store.Atomic(ctx, func(tx EntryStore) error {
		// re-fetch di dalam transaksi biar tidak kerja di atas snapshot basi
		cur, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		termBefore := cur.TimetableEntryTermID

		if err := apply(cur); err != nil {
			return err
		}
		cur.TimetableEntryTermID = termBefore

		conflicts, err := (ConflictChecker{Store: tx}).Check(ctx, cur, &id)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}

		if _, err := tx.EnsureAllocation(ctx,
			cur.TimetableEntryTermID,
			cur.TimetableEntryTeacherID,
			cur.TimetableEntrySubjectID,
			cur.TimetableEntryClassID,
		); err != nil {
			return err
		}
		if err := tx.Save(ctx, cur); err != nil {
			return err
		}
		updated = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete: hapus entri + cascade record kehadiran miliknya, lapor jumlahnya.
// Tidak perlu re-check konflik; menghapus tidak pernah menambah bentrok.
func (s *TimetableService) Delete(ctx context.Context, id uuid.UUID) (*DeletionSummary, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.lockTerm(existing.TimetableEntryTermID)
	defer unlock()

	summary := &DeletionSummary{EntryID: id}
	err = s.store.Atomic(ctx, func(tx EntryStore) error {
		removed, err := tx.DeleteAttendanceByEntry(ctx, id)
		if err != nil {
			return err
		}
		summary.RemovedAttendance = removed
		return tx.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// CheckConflicts: dry-run untuk UI sebelum commit. Read-only, tanpa lock,
// idempoten terhadap state yang tidak berubah.
func (s *TimetableService) CheckConflicts(ctx context.Context, candidate *model.TimetableEntryModel, excludeID *uuid.UUID) ([]Conflict, error) {
	return s.checker.Check(ctx, candidate, excludeID)
}

// Get meneruskan lookup entri (dipakai controller GetByID).
func (s *TimetableService) Get(ctx context.Context, id uuid.UUID) (*model.TimetableEntryModel, error) {
	return s.store.Get(ctx, id)
}

// ListTerm meneruskan read-side listing (dipakai controller & assembler).
func (s *TimetableService) ListTerm(ctx context.Context, termID uuid.UUID, f ViewFilter) ([]EntryDetail, error) {
	return s.store.ListTermDetailed(ctx, termID, f)
}
