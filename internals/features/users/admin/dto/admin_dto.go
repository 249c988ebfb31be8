package dto

import "trackzone_backend/internals/features/users/admin/model"

type RegisterAdminRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type AdminResponse struct {
	AdminID string `json:"admin_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

func ToAdminResponse(m *model.AdminModel) AdminResponse {
	return AdminResponse{
		AdminID: m.AdminID.String(),
		Name:    m.AdminName,
		Email:   m.AdminEmail,
	}
}
