package constants

import "fmt"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

var AllRoles = []string{RoleAdmin, RoleEmployee}

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyEmployeesCanAccess = "❌ Hanya karyawan yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEmployee(feature string) string {
	return fmt.Sprintf(ErrOnlyEmployeesCanAccess, feature)
}
