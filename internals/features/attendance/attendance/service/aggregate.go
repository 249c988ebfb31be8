// file: internals/features/attendance/attendance/service/aggregate.go
//
// Inti agregasi absensi: fungsi murni tanpa DB.
// Alur: NormalizeDays (dedup per tanggal + hitung jam) →
// AggregateMonth (merge per nomor bulan + hitung counter) →
// SummarizeYear (jumlah semua counter bulan).
// Semua write path memanggil fungsi yang sama di dalam satu transaksi,
// jadi hasilnya idempotent: aggregate(aggregate(D)) == aggregate(D).
package service

import (
	"errors"
	"math"
	"sort"
	"time"

	"trackzone_backend/internals/constants"
	"trackzone_backend/internals/features/attendance/attendance/model"

	"github.com/google/uuid"
)

var ErrInvalidInterval = errors.New("check_out_time lebih awal dari check_in_time")

// MonthTotals: enam counter turunan satu bulan (atau rekap satu tahun).
type MonthTotals struct {
	TotalWorkingDays int `json:"total_working_days"`
	PresentDays      int `json:"present_days"`
	AbsentDays       int `json:"absent_days"`
	LateDays         int `json:"late_days"`
	HalfDays         int `json:"half_days"`
	LeavesTaken      int `json:"leaves_taken"`
}

// TruncateDay memotong timestamp ke tengah malam UTC — perbandingan tanggal
// selalu by value, bukan by instant.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// RoundHours membulatkan jam kerja ke 2 desimal (09:00→17:30 = 8.50).
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// computeHours mengisi ulang hours_worked sesuai aturan turunan:
// - ada check-out + check-in → selisih jam, 2 desimal;
// - check-out tanpa check-in → unset (hindari negatif/NaN);
// - tanpa check-out → pertahankan nilai lama.
func computeHours(d *model.AttendanceDayModel) error {
	if d.AttendanceDayCheckOutTime == nil {
		return nil
	}
	if d.AttendanceDayCheckInTime == nil {
		d.AttendanceDayHoursWorked = nil
		return nil
	}
	if d.AttendanceDayCheckOutTime.Before(*d.AttendanceDayCheckInTime) {
		return ErrInvalidInterval
	}
	h := RoundHours(d.AttendanceDayCheckOutTime.Sub(*d.AttendanceDayCheckInTime).Hours())
	d.AttendanceDayHoursWorked = &h
	return nil
}

// NormalizeDays menggabungkan kandidat hari menjadi himpunan tanggal unik:
// record yang datang belakangan menang utuh saat tanggal sama, lalu
// hours_worked dihitung ulang. Tanggal rusak (zero) tidak menggagalkan
// agregasi — di-drop dan dikembalikan supaya caller bisa mencatatnya.
// Output terurut tanggal.
func NormalizeDays(days []model.AttendanceDayModel) (normalized, dropped []model.AttendanceDayModel, err error) {
	byDate := make(map[string]model.AttendanceDayModel, len(days))
	order := make([]string, 0, len(days))

	for _, d := range days {
		if d.AttendanceDayDate.IsZero() {
			dropped = append(dropped, d)
			continue
		}
		d.AttendanceDayDate = TruncateDay(d.AttendanceDayDate)
		key := DayKey(d.AttendanceDayDate)

		if prev, ok := byDate[key]; ok {
			// later wins — tapi identitas row lama dipertahankan supaya
			// persist jadi update, bukan insert baru
			if d.AttendanceDayID == uuid.Nil {
				d.AttendanceDayID = prev.AttendanceDayID
			}
			if d.AttendanceDayMonthID == uuid.Nil {
				d.AttendanceDayMonthID = prev.AttendanceDayMonthID
			}
		} else {
			order = append(order, key)
		}
		byDate[key] = d
	}

	normalized = make([]model.AttendanceDayModel, 0, len(order))
	for _, key := range order {
		d := byDate[key]
		if err := computeHours(&d); err != nil {
			return nil, dropped, err
		}
		normalized = append(normalized, d)
	}

	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].AttendanceDayDate.Before(normalized[j].AttendanceDayDate)
	})
	return normalized, dropped, nil
}

// CountDays menghitung counter bulanan murni dari himpunan hari.
func CountDays(days []model.AttendanceDayModel) MonthTotals {
	t := MonthTotals{TotalWorkingDays: len(days)}
	for _, d := range days {
		switch d.AttendanceDayStatus {
		case constants.StatusPresent:
			t.PresentDays++
		case constants.StatusAbsent:
			t.AbsentDays++
		case constants.StatusLate:
			t.LateDays++
		case constants.StatusHalfDay:
			t.HalfDays++
		case constants.StatusLeave:
			t.LeavesTaken++
		}
	}
	return t
}

// AggregateMonth merge hari baru ke record bulan (boleh nil), lalu hitung
// ulang counter dari himpunan gabungan. Existing dulu baru hari baru,
// supaya submission terakhir yang menang saat tanggal bentrok.
func AggregateMonth(existing *model.AttendanceMonthModel, monthNum int, newDays []model.AttendanceDayModel) (model.AttendanceMonthModel, []model.AttendanceDayModel, error) {
	var m model.AttendanceMonthModel
	var union []model.AttendanceDayModel

	if existing != nil {
		m = *existing
		union = append(union, existing.Days...)
	} else {
		m.AttendanceMonthApprovalStatus = constants.ApprovalPending
	}
	m.AttendanceMonthMonth = monthNum
	union = append(union, newDays...)

	days, dropped, err := NormalizeDays(union)
	if err != nil {
		return model.AttendanceMonthModel{}, dropped, err
	}

	m.Days = days
	totals := CountDays(days)
	m.AttendanceMonthTotalWorkingDays = totals.TotalWorkingDays
	m.AttendanceMonthPresentDays = totals.PresentDays
	m.AttendanceMonthAbsentDays = totals.AbsentDays
	m.AttendanceMonthLateDays = totals.LateDays
	m.AttendanceMonthHalfDays = totals.HalfDays
	m.AttendanceMonthLeavesTaken = totals.LeavesTaken
	return m, dropped, nil
}

// MergeMonths menjamin satu record per nomor bulan (merge-by-month-number
// dijalankan sebelum merge per hari).
func MergeMonths(months []model.AttendanceMonthModel) ([]model.AttendanceMonthModel, []model.AttendanceDayModel, error) {
	byNum := make(map[int]*model.AttendanceMonthModel, len(months))
	order := make([]int, 0, len(months))
	var allDropped []model.AttendanceDayModel

	for i := range months {
		num := months[i].AttendanceMonthMonth
		if existing, ok := byNum[num]; ok {
			merged, dropped, err := AggregateMonth(existing, num, months[i].Days)
			if err != nil {
				return nil, allDropped, err
			}
			allDropped = append(allDropped, dropped...)
			*existing = merged
			continue
		}
		merged, dropped, err := AggregateMonth(nil, num, months[i].Days)
		if err != nil {
			return nil, allDropped, err
		}
		allDropped = append(allDropped, dropped...)
		merged.AttendanceMonthID = months[i].AttendanceMonthID
		merged.AttendanceMonthYearID = months[i].AttendanceMonthYearID
		if months[i].AttendanceMonthApprovalStatus != "" {
			merged.AttendanceMonthApprovalStatus = months[i].AttendanceMonthApprovalStatus
		}
		byNum[num] = &merged
		order = append(order, num)
	}

	out := make([]model.AttendanceMonthModel, 0, len(order))
	for _, num := range order {
		out = append(out, *byNum[num])
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AttendanceMonthMonth < out[j].AttendanceMonthMonth
	})
	return out, allDropped, nil
}

// SummarizeYear: rekap tahunan = jumlah elemen-wise counter semua bulan.
// Bulan yang tidak ada menyumbang nol.
func SummarizeYear(months []model.AttendanceMonthModel) MonthTotals {
	var t MonthTotals
	for _, m := range months {
		t.TotalWorkingDays += m.AttendanceMonthTotalWorkingDays
		t.PresentDays += m.AttendanceMonthPresentDays
		t.AbsentDays += m.AttendanceMonthAbsentDays
		t.LateDays += m.AttendanceMonthLateDays
		t.HalfDays += m.AttendanceMonthHalfDays
		t.LeavesTaken += m.AttendanceMonthLeavesTaken
	}
	return t
}
