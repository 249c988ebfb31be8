package service

import "errors"

var (
	ErrOutsideGeofence     = errors.New("posisi di luar area kantor")
	ErrOutsideWindow       = errors.New("di luar jam check-in")
	ErrAlreadyCheckedIn    = errors.New("sudah check-in hari ini")
	ErrAlreadyCheckedOut   = errors.New("sudah check-out hari ini")
	ErrNotCheckedIn        = errors.New("belum check-in hari ini")
	ErrFingerprintMismatch = errors.New("fingerprint tidak cocok")
	ErrNoFingerprint       = errors.New("fingerprint belum terdaftar")
	ErrEmployeeNotFound    = errors.New("employee tidak ditemukan")
)
