package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"trackzone_backend/internals/constants"
	attModel "trackzone_backend/internals/features/attendance/attendance/model"
	attService "trackzone_backend/internals/features/attendance/attendance/service"
	"trackzone_backend/internals/features/leaves/model"
)

var (
	ErrLeaveNotFound       = errors.New("pengajuan cuti tidak ditemukan")
	ErrLeaveAlreadyDecided = errors.New("pengajuan cuti sudah diputuskan")
	ErrLeaveInvalidRange   = errors.New("end_date lebih awal dari start_date")
)

type LeaveService struct {
	DB  *gorm.DB
	Agg *attService.AttendanceService
}

func NewLeaveService(db *gorm.DB) *LeaveService {
	return &LeaveService{DB: db, Agg: attService.NewAttendanceService(db)}
}

// Submit membuat pengajuan cuti berstatus pending.
func (s *LeaveService) Submit(employeeCode string, start, end time.Time, reason string) (*model.LeaveRequestModel, error) {
	start = attService.TruncateDay(start)
	end = attService.TruncateDay(end)
	if end.Before(start) {
		return nil, ErrLeaveInvalidRange
	}

	req := model.LeaveRequestModel{
		LeaveRequestEmployeeID: employeeCode,
		LeaveRequestStartDate:  start,
		LeaveRequestEndDate:    end,
		LeaveRequestReason:     reason,
		LeaveRequestStatus:     constants.LeavePending,
	}
	if err := s.DB.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// Decide memutuskan pengajuan. Approve menulis day record Leave untuk tiap
// tanggal dalam rentang lewat jalur agregasi yang sama dengan check-in,
// jadi counter leaves_taken bulan & tahun langsung ikut.
func (s *LeaveService) Decide(id string, status, adminNotes string) (*model.LeaveRequestModel, error) {
	var req model.LeaveRequestModel
	err := s.DB.Where("leave_request_id = ?", id).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLeaveNotFound
	}
	if err != nil {
		return nil, err
	}
	if req.LeaveRequestStatus != constants.LeavePending {
		return nil, ErrLeaveAlreadyDecided
	}

	updates := map[string]any{"leave_request_status": status}
	if adminNotes != "" {
		updates["leave_request_admin_notes"] = adminNotes
	}
	if err := s.DB.Model(&req).Updates(updates).Error; err != nil {
		return nil, err
	}
	req.LeaveRequestStatus = status

	if status == constants.LeaveApproved {
		if err := s.applyLeaveDays(&req); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

func (s *LeaveService) applyLeaveDays(req *model.LeaveRequestModel) error {
	// rentang bisa lintas tahun — kelompokkan per tahun dulu
	byYear := map[int][]attModel.AttendanceDayModel{}
	for d := req.LeaveRequestStartDate; !d.After(req.LeaveRequestEndDate); d = d.AddDate(0, 0, 1) {
		byYear[d.Year()] = append(byYear[d.Year()], attModel.AttendanceDayModel{
			AttendanceDayDate:   d,
			AttendanceDayStatus: constants.StatusLeave,
		})
	}
	for year, days := range byYear {
		if _, err := s.Agg.ApplyDays(req.LeaveRequestEmployeeID, year, days); err != nil {
			return err
		}
	}
	return nil
}
