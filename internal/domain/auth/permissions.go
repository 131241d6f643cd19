package auth

const (
	RouteAdmin        = "/admin/*"
	RouteOrganization = "/organization/*"
	RouteEmployee     = "/employee/*"
)

var DefaultRoutes = []string{
	RouteAdmin,
	RouteOrganization,
	RouteEmployee,
}

// RolePermissions binds each role to the view prefixes it may open.
var RolePermissions = map[Role][]string{
	RoleBankAdmin:    {RouteAdmin},
	RoleOrganization: {RouteOrganization},
	RoleEmployee:     {RouteEmployee},
}
