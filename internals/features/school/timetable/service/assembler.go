// file: internals/features/school/timetable/service/assembler.go
package service

import (
	"github.com/google/uuid"

	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   Schedule Assembler — read-side murni.

   Mengubah himpunan entri flat milik satu term menjadi grid
   mingguan (hari × slot display). Satu algoritma generik
   untuk tiga bentuk view (per guru / per kelas / per ruang);
   yang beda cuma dimensi id yang dicocokkan per entri.

   Daftar slot adalah input konfigurasi, bukan pengetahuan
   domain yang di-hardcode: produksi memuatnya dari
   timetable_settings, test menyuntikkan slotnya sendiri.
   ======================================================= */

type Dimension string

const (
	DimensionTeacher Dimension = "teacher"
	DimensionClass   Dimension = "class"
	DimensionRoom    Dimension = "room"
)

// Slot = satu blok display pada grid.
type Slot struct {
	Label string `json:"label"`
	Start Clock  `json:"start"`
	End   Clock  `json:"end"`
}

func (s Slot) Range() TimeRange {
	return TimeRange{Start: s.Start, End: s.End}
}

// DefaultSlots: hari sekolah 07:30–15:30, blok per jam. Dipakai kalau
// belum ada baris timetable_settings.
func DefaultSlots() []Slot {
	slots := make([]Slot, 0, 8)
	labels := []string{"Jam ke-1", "Jam ke-2", "Jam ke-3", "Jam ke-4", "Jam ke-5", "Jam ke-6", "Jam ke-7", "Jam ke-8"}
	start := Clock(7*60 + 30)
	for i := 0; i < 8; i++ {
		slots = append(slots, Slot{
			Label: labels[i],
			Start: start + Clock(i*60),
			End:   start + Clock((i+1)*60),
		})
	}
	return slots
}

// Lesson = payload deskriptif satu entri di dalam sel grid.
type Lesson struct {
	EntryID     uuid.UUID `json:"entry_id"`
	SubjectName string    `json:"subject_name"`
	TeacherName string    `json:"teacher_name"`
	ClassName   string    `json:"class_name"`
	RoomName    *string   `json:"room_name,omitempty"`
	StartTime   string    `json:"start_time"`    // "07:30"
	EndTime     string    `json:"end_time"`      // "08:30"
	StartTime12 string    `json:"start_time_12"` // "7:30 AM"
	EndTime12   string    `json:"end_time_12"`
	ColorTag    string    `json:"color_tag"` // warna guru untuk grouping visual
}

// SlotCell: semua lesson yang range-nya memotong slot ini. Dalam operasi
// normal isinya paling banyak satu untuk resource yang difilter (conflict
// checker sudah mencegah overlap), tapi kalau ada data basi/injeksi
// eksternal semuanya tetap ditampilkan, tidak ada yang di-drop diam-diam.
type SlotCell struct {
	Slot    Slot     `json:"slot"`
	Lessons []Lesson `json:"lessons"`
}

type DayColumn struct {
	DayOfWeek int        `json:"day_of_week"`
	DayName   string     `json:"day_name"`
	Slots     []SlotCell `json:"slots"`
}

type WeeklyView struct {
	Dimension    Dimension   `json:"dimension"`
	ResourceID   uuid.UUID   `json:"resource_id"`
	ResourceName string      `json:"resource_name"`
	Days         []DayColumn `json:"days"`
}

// matchesDimension: apakah entri milik resource yang diminta. Store
// biasanya sudah pre-filter; ini penjaga kedua supaya view tidak pernah
// berisi entri resource lain.
func matchesDimension(det EntryDetail, dim Dimension, resourceID uuid.UUID) bool {
	switch dim {
	case DimensionTeacher:
		return det.Entry.TimetableEntryTeacherID == resourceID
	case DimensionClass:
		return det.Entry.TimetableEntryClassID == resourceID
	case DimensionRoom:
		return det.Entry.TimetableEntryRoomID != nil && *det.Entry.TimetableEntryRoomID == resourceID
	default:
		return false
	}
}

func toLesson(det EntryDetail) Lesson {
	r := det.Range()
	start12, _ := helper.FormatClock12h(r.Start.String())
	end12, _ := helper.FormatClock12h(r.End.String())
	return Lesson{
		EntryID:     det.Entry.TimetableEntryID,
		SubjectName: det.SubjectName,
		TeacherName: det.TeacherName,
		ClassName:   det.ClassName,
		RoomName:    det.RoomName,
		StartTime:   r.Start.String(),
		EndTime:     r.End.String(),
		StartTime12: start12,
		EndTime12:   end12,
		ColorTag:    helper.ColorTag(det.Entry.TimetableEntryTeacherID),
	}
}

// BuildWeeklyView membangun grid mingguan dari entri flat. daysPerWeek
// 1..7 (umumnya 5 = Senin..Jumat). Tidak pernah menyentuh store.
func BuildWeeklyView(entries []EntryDetail, slots []Slot, daysPerWeek int, dim Dimension, resourceID uuid.UUID, resourceName string) (*WeeklyView, error) {
	if daysPerWeek < 1 || daysPerWeek > 7 {
		return nil, &ValidationError{Field: "days_per_week", Reason: "must be between 1 and 7"}
	}
	if len(slots) == 0 {
		return nil, &ValidationError{Field: "slots", Reason: "at least one display slot is required"}
	}
	for _, sl := range slots {
		if !sl.Range().Valid() {
			return nil, &ValidationError{Field: "slots", Reason: "slot " + sl.Label + " has start >= end"}
		}
	}
	switch dim {
	case DimensionTeacher, DimensionClass, DimensionRoom:
	default:
		return nil, &ValidationError{Field: "dimension", Reason: "must be teacher, class, or room"}
	}

	// bucket per hari dulu, sekali jalan
	perDay := make(map[int][]EntryDetail, daysPerWeek)
	for _, det := range entries {
		if !matchesDimension(det, dim, resourceID) {
			continue
		}
		dow := det.Entry.TimetableEntryDayOfWeek
		if dow < 1 || dow > daysPerWeek {
			continue
		}
		perDay[dow] = append(perDay[dow], det)
	}

	view := &WeeklyView{
		Dimension:    dim,
		ResourceID:   resourceID,
		ResourceName: resourceName,
		Days:         make([]DayColumn, 0, daysPerWeek),
	}
	for dow := 1; dow <= daysPerWeek; dow++ {
		col := DayColumn{
			DayOfWeek: dow,
			DayName:   DayName(dow),
			Slots:     make([]SlotCell, 0, len(slots)),
		}
		for _, sl := range slots {
			cell := SlotCell{Slot: sl}
			for _, det := range perDay[dow] {
				if sl.Range().Overlaps(det.Range()) {
					cell.Lessons = append(cell.Lessons, toLesson(det))
				}
			}
			col.Slots = append(col.Slots, cell)
		}
		view.Days = append(view.Days, col)
	}
	return view, nil
}
