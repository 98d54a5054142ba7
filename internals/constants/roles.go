package constants

import "fmt"

// Role yang dikenal aplikasi
const (
	RoleAdmin  = "admin"  // pengelola plaza
	RoleTenant = "tenant" // pemilik usaha / penyewa kios
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyTenantsCanAccess = "❌ Hanya tenant yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTenant(feature string) string {
	return fmt.Sprintf(ErrOnlyTenantsCanAccess, feature)
}
