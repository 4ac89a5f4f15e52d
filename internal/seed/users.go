package seed

import (
	"medcore-clinic/internal/domain/entity"
)

// Users returns the fixed demo login identities, one per ward role
func Users() []entity.User {
	return []entity.User{
		{ID: "user-recepcion", Name: "Maria Gonzalez", Initials: "MG", Role: entity.RoleRecepcion, Department: "Admissions"},
		{ID: "user-triaje", Name: "Sofia Rodriguez", Initials: "SR", Role: entity.RoleTriaje, Department: "Triage"},
		{ID: "user-doctor", Name: "Dr. Ricardo Mora", Initials: "DR", Role: entity.RoleDoctor, Department: "Cardiology"},
		{ID: "user-farmacia", Name: "Carlos Mendez", Initials: "CM", Role: entity.RoleFarmacia, Department: "Pharmacy"},
	}
}
