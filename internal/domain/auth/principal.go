package auth

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ManagerRoles may act on other employees' records.
var ManagerRoles = []Role{RoleAdmin, RoleHR, RoleManager}

// Principal is the verified caller of a request.
type Principal struct {
	UserID     int64
	EmployeeID *int64
	Role       Role
}

// HasRole reports whether the principal's role is in roles.
func (p Principal) HasRole(roles ...Role) bool {
	return slices.Contains(roles, p.Role)
}

func (p Principal) IsManager() bool {
	return p.HasRole(ManagerRoles...)
}

// RequireEmployee returns the employee the principal acts as.
func (p Principal) RequireEmployee() (int64, error) {
	if p.EmployeeID == nil {
		return 0, ErrNoEmployeeProfile
	}
	return *p.EmployeeID, nil
}

// PrincipalFromClaims reads user_id, employee_id and role from token claims.
func PrincipalFromClaims(claims map[string]any) (Principal, error) {
	userID, ok, err := claimInt64(claims, "user_id")
	if err != nil || !ok {
		return Principal{}, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	if role == "" {
		return Principal{}, ErrInvalidToken
	}

	p := Principal{UserID: userID, Role: Role(role)}

	employeeID, ok, err := claimInt64(claims, "employee_id")
	if err != nil {
		return Principal{}, ErrInvalidToken
	}
	if ok {
		p.EmployeeID = &employeeID
	}
	return p, nil
}

// Claims is the inverse of PrincipalFromClaims.
func (p Principal) Claims() map[string]any {
	claims := map[string]any{
		"user_id": p.UserID,
		"role":    string(p.Role),
	}
	if p.EmployeeID != nil {
		claims["employee_id"] = *p.EmployeeID
	}
	return claims
}

func claimInt64(claims map[string]any, key string) (int64, bool, error) {
	raw, present := claims[key]
	if !present || raw == nil {
		return 0, false, nil
	}

	var (
		id  int64
		err error
	)
	switch v := raw.(type) {
	case float64:
		id = int64(v)
		if float64(id) != v {
			err = fmt.Errorf("%s is not an integer", key)
		}
	case int64:
		id = v
	case int:
		id = int64(v)
	case json.Number:
		id, err = v.Int64()
	case string:
		id, err = strconv.ParseInt(v, 10, 64)
	default:
		err = fmt.Errorf("%s has unsupported type %T", key, raw)
	}
	if err != nil {
		return 0, false, err
	}
	if id <= 0 {
		return 0, false, fmt.Errorf("%s must be positive", key)
	}
	return id, true, nil
}
