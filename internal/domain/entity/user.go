package entity

// UserRole identifies which ward screen a user operates
type UserRole string

const (
	RoleRecepcion UserRole = "recepcion"
	RoleTriaje    UserRole = "triaje"
	RoleDoctor    UserRole = "doctor"
	RoleFarmacia  UserRole = "farmacia"
)

// User is a stub login identity. There is no password; login is a lookup
// by id against the fixed user set.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Initials   string   `json:"initials"`
	Role       UserRole `json:"role"`
	Department string   `json:"department"`
}

// ValidUserRole checks enum membership for the ward role
func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleRecepcion, RoleTriaje, RoleDoctor, RoleFarmacia:
		return true
	}
	return false
}
