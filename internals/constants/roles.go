package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrMustBeLoggedIn      = "❌ Anda harus login untuk mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorLogin(feature string) string {
	return fmt.Sprintf(ErrMustBeLoggedIn, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllowedRoles = []string{
		RoleUser,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
