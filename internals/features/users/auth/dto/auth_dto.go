package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	Email       string `json:"email"`

	// terisi hanya untuk role employee
	EmployeeCode string `json:"employee_code,omitempty"`

	// status fingerprint untuk hari ini (employee saja):
	// requires_fingerprint = sudah enrol tapi event hari ini belum diverifikasi
	RequiresFingerprint bool `json:"requires_fingerprint,omitempty"`
	FingerprintVerified bool `json:"fingerprint_verified,omitempty"`
}

type RequestOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
