package middleware

import (
	"net/http"

	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/pkg/response"
)

// RequireRole checks that the authenticated user holds one of the given
// ward roles. Role is read from context (set by AuthMiddleware from JWT
// claims).
func RequireRole(allowedRoles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if entity.UserRole(role) == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRecepcion is a convenience middleware for reception-only endpoints
func RequireRecepcion(next http.Handler) http.Handler {
	return RequireRole(entity.RoleRecepcion)(next)
}

// RequireTriaje is a convenience middleware for triage-only endpoints
func RequireTriaje(next http.Handler) http.Handler {
	return RequireRole(entity.RoleTriaje)(next)
}

// RequireDoctor is a convenience middleware for consultation endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequireFarmacia is a convenience middleware for pharmacy endpoints
func RequireFarmacia(next http.Handler) http.Handler {
	return RequireRole(entity.RoleFarmacia)(next)
}
