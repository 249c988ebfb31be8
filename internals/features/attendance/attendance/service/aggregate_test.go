package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackzone_backend/internals/constants"
	"trackzone_backend/internals/features/attendance/attendance/model"
)

func day(y int, m time.Month, d int, status string) model.AttendanceDayModel {
	return model.AttendanceDayModel{
		AttendanceDayDate:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		AttendanceDayStatus: status,
	}
}

func ts(y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	return &t
}

func TestNormalizeDaysLaterWins(t *testing.T) {
	first := day(2024, time.June, 10, constants.StatusPresent)
	second := day(2024, time.June, 10, constants.StatusLate)

	normalized, dropped, err := NormalizeDays([]model.AttendanceDayModel{first, second})
	require.NoError(t, err)
	assert.Empty(t, dropped)
	require.Len(t, normalized, 1)
	assert.Equal(t, constants.StatusLate, normalized[0].AttendanceDayStatus)
}

func TestNormalizeDaysDropsZeroDates(t *testing.T) {
	broken := model.AttendanceDayModel{AttendanceDayStatus: constants.StatusPresent}
	valid := day(2024, time.June, 11, constants.StatusPresent)

	normalized, dropped, err := NormalizeDays([]model.AttendanceDayModel{broken, valid})
	require.NoError(t, err)
	assert.Len(t, dropped, 1)
	require.Len(t, normalized, 1)
	assert.Equal(t, "2024-06-11", DayKey(normalized[0].AttendanceDayDate))
}

func TestNormalizeDaysSortedByDate(t *testing.T) {
	days := []model.AttendanceDayModel{
		day(2024, time.June, 20, constants.StatusPresent),
		day(2024, time.June, 5, constants.StatusPresent),
		day(2024, time.June, 12, constants.StatusPresent),
	}
	normalized, _, err := NormalizeDays(days)
	require.NoError(t, err)
	require.Len(t, normalized, 3)
	assert.Equal(t, "2024-06-05", DayKey(normalized[0].AttendanceDayDate))
	assert.Equal(t, "2024-06-20", DayKey(normalized[2].AttendanceDayDate))
}

func TestComputeHoursTwoDecimals(t *testing.T) {
	d := day(2024, time.June, 10, constants.StatusPresent)
	d.AttendanceDayCheckInTime = ts(2024, time.June, 10, 9, 0)
	d.AttendanceDayCheckOutTime = ts(2024, time.June, 10, 17, 30)

	normalized, _, err := NormalizeDays([]model.AttendanceDayModel{d})
	require.NoError(t, err)
	require.NotNil(t, normalized[0].AttendanceDayHoursWorked)
	assert.Equal(t, 8.5, *normalized[0].AttendanceDayHoursWorked)
}

func TestComputeHoursCheckOutBeforeCheckIn(t *testing.T) {
	d := day(2024, time.June, 10, constants.StatusPresent)
	d.AttendanceDayCheckInTime = ts(2024, time.June, 10, 17, 0)
	d.AttendanceDayCheckOutTime = ts(2024, time.June, 10, 9, 0)

	_, _, err := NormalizeDays([]model.AttendanceDayModel{d})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestComputeHoursCheckOutWithoutCheckIn(t *testing.T) {
	d := day(2024, time.June, 10, constants.StatusPresent)
	d.AttendanceDayCheckOutTime = ts(2024, time.June, 10, 17, 0)
	stale := 3.0
	d.AttendanceDayHoursWorked = &stale

	normalized, _, err := NormalizeDays([]model.AttendanceDayModel{d})
	require.NoError(t, err)
	assert.Nil(t, normalized[0].AttendanceDayHoursWorked)
}

func TestAggregateMonthMergeCounters(t *testing.T) {
	existing := &model.AttendanceMonthModel{
		AttendanceMonthMonth: 6,
		Days: []model.AttendanceDayModel{
			day(2024, time.June, 10, constants.StatusLate),
		},
	}

	merged, dropped, err := AggregateMonth(existing, 6,
		[]model.AttendanceDayModel{day(2024, time.June, 11, constants.StatusPresent)})
	require.NoError(t, err)
	assert.Empty(t, dropped)

	assert.Equal(t, 2, merged.AttendanceMonthTotalWorkingDays)
	assert.Equal(t, 1, merged.AttendanceMonthLateDays)
	assert.Equal(t, 1, merged.AttendanceMonthPresentDays)
	assert.Equal(t, 0, merged.AttendanceMonthAbsentDays)
}

func TestAggregateMonthSameDateOverwrites(t *testing.T) {
	existing := &model.AttendanceMonthModel{
		AttendanceMonthMonth: 6,
		Days: []model.AttendanceDayModel{
			day(2024, time.June, 10, constants.StatusAbsent),
		},
	}

	merged, _, err := AggregateMonth(existing, 6,
		[]model.AttendanceDayModel{day(2024, time.June, 10, constants.StatusPresent)})
	require.NoError(t, err)

	assert.Equal(t, 1, merged.AttendanceMonthTotalWorkingDays)
	assert.Equal(t, 1, merged.AttendanceMonthPresentDays)
	assert.Equal(t, 0, merged.AttendanceMonthAbsentDays)
}

func TestAggregateMonthIdempotent(t *testing.T) {
	days := []model.AttendanceDayModel{
		day(2024, time.June, 10, constants.StatusPresent),
		day(2024, time.June, 11, constants.StatusLate),
	}
	once, _, err := AggregateMonth(nil, 6, days)
	require.NoError(t, err)

	twice, _, err := AggregateMonth(&once, 6, once.Days)
	require.NoError(t, err)

	assert.Equal(t, once.AttendanceMonthTotalWorkingDays, twice.AttendanceMonthTotalWorkingDays)
	assert.Equal(t, once.AttendanceMonthPresentDays, twice.AttendanceMonthPresentDays)
	assert.Equal(t, once.AttendanceMonthLateDays, twice.AttendanceMonthLateDays)
	assert.Len(t, twice.Days, len(once.Days))
}

func TestAggregateMonthNewMonthPendingApproval(t *testing.T) {
	merged, _, err := AggregateMonth(nil, 7,
		[]model.AttendanceDayModel{day(2024, time.July, 1, constants.StatusPresent)})
	require.NoError(t, err)
	assert.Equal(t, constants.ApprovalPending, merged.AttendanceMonthApprovalStatus)
}

func TestMergeMonthsOneRecordPerNumber(t *testing.T) {
	months := []model.AttendanceMonthModel{
		{AttendanceMonthMonth: 6, Days: []model.AttendanceDayModel{day(2024, time.June, 10, constants.StatusPresent)}},
		{AttendanceMonthMonth: 6, Days: []model.AttendanceDayModel{day(2024, time.June, 11, constants.StatusLate)}},
		{AttendanceMonthMonth: 7, Days: []model.AttendanceDayModel{day(2024, time.July, 1, constants.StatusPresent)}},
	}

	merged, dropped, err := MergeMonths(months)
	require.NoError(t, err)
	assert.Empty(t, dropped)
	require.Len(t, merged, 2)

	assert.Equal(t, 6, merged[0].AttendanceMonthMonth)
	assert.Equal(t, 2, merged[0].AttendanceMonthTotalWorkingDays)
	assert.Equal(t, 7, merged[1].AttendanceMonthMonth)
}

func TestSummarizeYearElementWise(t *testing.T) {
	months := []model.AttendanceMonthModel{
		{
			AttendanceMonthTotalWorkingDays: 20,
			AttendanceMonthPresentDays:      15,
			AttendanceMonthLateDays:         3,
			AttendanceMonthAbsentDays:       2,
		},
		{
			AttendanceMonthTotalWorkingDays: 10,
			AttendanceMonthPresentDays:      8,
			AttendanceMonthHalfDays:         1,
			AttendanceMonthLeavesTaken:      1,
		},
	}

	totals := SummarizeYear(months)
	assert.Equal(t, 30, totals.TotalWorkingDays)
	assert.Equal(t, 23, totals.PresentDays)
	assert.Equal(t, 3, totals.LateDays)
	assert.Equal(t, 2, totals.AbsentDays)
	assert.Equal(t, 1, totals.HalfDays)
	assert.Equal(t, 1, totals.LeavesTaken)

	// jumlah per-status + holiday = total — tidak ada hari yang hilang
	counted := totals.PresentDays + totals.AbsentDays + totals.LateDays +
		totals.HalfDays + totals.LeavesTaken
	assert.LessOrEqual(t, counted, totals.TotalWorkingDays)
}

func TestSummarizeYearEmpty(t *testing.T) {
	totals := SummarizeYear(nil)
	assert.Equal(t, MonthTotals{}, totals)
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 8.5, RoundHours(8.4999999))
	assert.Equal(t, 8.33, RoundHours(8.3333333))
}
