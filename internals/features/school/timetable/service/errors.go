// file: internals/features/school/timetable/service/errors.go
package service

import (
	"fmt"

	"github.com/google/uuid"
)

/* =======================================================
   Taksonomi error engine:
   - ValidationError : input cacat, langsung ke pemanggil
   - ConflictError   : bentrok jadwal terklasifikasi (hasil
                       normal yang informatif, bukan fault)
   - NotFoundError   : id entri tidak ada (update/delete)
   Error storage diteruskan apa adanya, tidak dibungkus.
   ======================================================= */

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

type ConflictType string

const (
	ConflictTeacher ConflictType = "teacher"
	ConflictClass   ConflictType = "class"
	ConflictRoom    ConflictType = "room"
)

// Conflict = satu entri existing yang overlap dengan kandidat pada satu
// dimensi resource. Entri yang sama bisa muncul lebih dari sekali dengan
// Type berbeda (mis. guru sama DAN ruang sama).
type Conflict struct {
	Type        ConflictType `json:"type"`
	Entry       EntryDetail  `json:"entry"`
	Description string       `json:"description"`
}

type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 1 {
		return "jadwal bentrok: " + e.Conflicts[0].Description
	}
	return fmt.Sprintf("jadwal bentrok: %d konflik ditemukan", len(e.Conflicts))
}

var dayNames = [8]string{"", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}

// DayName mengembalikan nama hari untuk weekday 1..7; di luar itu string kosong.
func DayName(dow int) string {
	if dow < 1 || dow > 7 {
		return ""
	}
	return dayNames[dow]
}
