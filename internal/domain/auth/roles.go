package auth

type Role string

const (
	RoleBankAdmin    Role = "BANK_ADMIN"
	RoleOrganization Role = "ORGANIZATION"
	RoleEmployee     Role = "EMPLOYEE"
)

const LoginPath = "/login"

var Roles = []Role{RoleBankAdmin, RoleOrganization, RoleEmployee}

func (r Role) Valid() bool {
	switch r {
	case RoleBankAdmin, RoleOrganization, RoleEmployee:
		return true
	}
	return false
}

// DashboardPath is where a role lands after login or a denied navigation.
// Unknown roles go to the login view.
func DashboardPath(r Role) string {
	switch r {
	case RoleBankAdmin:
		return "/admin/dashboard"
	case RoleOrganization:
		return "/organization/dashboard"
	case RoleEmployee:
		return "/employee/dashboard"
	default:
		return LoginPath
	}
}

// User is the persisted identity projection of a login.
type User struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}
