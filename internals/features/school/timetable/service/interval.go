// file: internals/features/school/timetable/service/interval.go
package service

import (
	"fmt"
	"strings"
	"time"

	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   Interval Model — range waktu half-open dalam satu hari.

   Clock = menit sejak 00:00 (0..1439). Semua aritmetika
   overlap dikerjakan di sini, lepas dari bahasa query
   storage mana pun, supaya bisa diuji langsung.
   ======================================================= */

type Clock int

// ParseClockString menerima "HH:mm" atau "HH:mm:ss". Parsing layout
// dipusatkan di helper.ParseClock; di sini hanya trim + konversi ke Clock.
func ParseClockString(s string) (Clock, error) {
	t, err := helper.ParseClock(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return ClockFromTime(t), nil
}

// ClockFromTime mengambil komponen jam+menit; detik dibuang
// (kolom TIME di entri selalu granularitas menit).
func ClockFromTime(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// ToTime mengembalikan representasi time.Time (tanggal zero) untuk kolom TIME.
func (c Clock) ToTime() time.Time {
	return time.Date(0, time.January, 1, int(c)/60, int(c)%60, 0, 0, time.UTC)
}

type TimeRange struct {
	Start Clock
	End   Clock
}

// Valid: start < end. Range kosong (start == end) tidak valid dan harus
// ditolak di jalur create/update sebelum sampai ke sini.
func (r TimeRange) Valid() bool {
	return r.Start < r.End
}

// Overlaps: half-open standar — a.start < b.end && b.start < a.end.
// Range yang bersentuhan di ujung (a.end == b.start) TIDAK overlap.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

// Contains: instant berada di dalam [start, end).
func (r TimeRange) Contains(instant Clock) bool {
	return r.Start <= instant && instant < r.End
}
