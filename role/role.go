package role

// Roles stored on a user record. A user without a role is a patient.
const (
	None  = ""
	Admin = "admin"
)

func IsAdmin(r string) bool {
	return r == Admin
}
