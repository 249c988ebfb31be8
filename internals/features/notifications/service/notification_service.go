package service

import (
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"trackzone_backend/internals/features/notifications/model"
)

// NotificationService menyimpan notifikasi ke DB lalu mendorongnya lewat
// hub websocket. Dipakai reconciler check-in sebagai Notifier.
type NotificationService struct {
	DB  *gorm.DB
	Hub *Hub
}

func NewNotificationService(db *gorm.DB, hub *Hub) *NotificationService {
	return &NotificationService{DB: db, Hub: hub}
}

// Announce membuat notifikasi dan mendorongnya; recipients kosong =
// broadcast ke semua karyawan.
func (s *NotificationService) Announce(notifType, title, body string, recipients []string) (*model.NotificationModel, error) {
	n := model.NotificationModel{
		NotificationType:  notifType,
		NotificationTitle: title,
		NotificationBody:  body,
	}
	if len(recipients) > 0 {
		raw, err := sonic.Marshal(recipients)
		if err != nil {
			return nil, err
		}
		n.NotificationRecipients = datatypes.JSON(raw)
	}
	if err := s.DB.Create(&n).Error; err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.Push(&n, recipients)
	}
	return &n, nil
}

// ===== implementasi checkin service.Notifier =====

func (s *NotificationService) EmitCheckIn(employeeName string, at time.Time) {
	body := fmt.Sprintf("%s check-in pukul %s", employeeName, at.Format("15:04"))
	if _, err := s.Announce(model.TypeCheckIn, "Check-in", body, nil); err != nil {
		log.Printf("[NOTIF] emit check-in gagal: %v", err)
	}
}

func (s *NotificationService) EmitCheckOut(employeeName string, at time.Time) {
	body := fmt.Sprintf("%s check-out pukul %s", employeeName, at.Format("15:04"))
	if _, err := s.Announce(model.TypeCheckOut, "Check-out", body, nil); err != nil {
		log.Printf("[NOTIF] emit check-out gagal: %v", err)
	}
}
