package constants

// Status harian absensi (satu DayRecord per tanggal)
const (
	StatusPresent = "Present"
	StatusLate    = "Late"
	StatusAbsent  = "Absent"
	StatusHalfDay = "Half-day"
	StatusHoliday = "Holiday"
	StatusLeave   = "Leave"
)

var DayStatuses = []string{
	StatusPresent,
	StatusLate,
	StatusAbsent,
	StatusHalfDay,
	StatusHoliday,
	StatusLeave,
}

// Status approval rekap bulanan
const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
)

// Status tugas
const (
	TaskPending   = "Pending"
	TaskPartially = "Partially Completed"
	TaskCompleted = "Completed"
)

// Status pengajuan cuti
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

func IsValidDayStatus(s string) bool {
	for _, v := range DayStatuses {
		if v == s {
			return true
		}
	}
	return false
}
