package auth

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/pkg/errors"
)

const routeModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj)
`

// RoutePolicy answers whether a role may open a view path.
type RoutePolicy struct {
	enforcer *casbin.Enforcer
}

// NewRoutePolicy loads RolePermissions into an in-memory enforcer.
func NewRoutePolicy() (*RoutePolicy, error) {
	m, err := model.NewModelFromString(routeModel)
	if err != nil {
		return nil, errors.Wrap(err, "parse route policy model")
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, errors.Wrap(err, "create route enforcer")
	}
	for _, role := range Roles {
		for _, route := range RolePermissions[role] {
			if _, err := enforcer.AddPolicy(string(role), route); err != nil {
				return nil, errors.Wrapf(err, "add policy %s %s", role, route)
			}
		}
	}
	return &RoutePolicy{enforcer: enforcer}, nil
}

func (p *RoutePolicy) Allowed(role Role, path string) (bool, error) {
	if !role.Valid() {
		return false, nil
	}
	ok, err := p.enforcer.Enforce(string(role), path)
	if err != nil {
		return false, errors.Wrapf(err, "enforce %s %s", role, path)
	}
	return ok, nil
}
