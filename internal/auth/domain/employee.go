package domain

import (
	"time"

	"github.com/OngTK/WeWork/pkg/constant"
)

type Employee struct {
	EmpID        int64
	LoginID      string
	PasswordHash string
	Name         string
	Email        string
	Position     string
	DeptID       int64
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e *Employee) Active() bool {
	return e.Status == constant.StatusActive
}

// adminPositions lists the positions that carry the admin role.
var adminPositions = map[string]struct{}{
	"이사": {},
	"전무": {},
	"대표": {},
}

// Roles derives the role list from the employee's position. Every employee
// carries ROLE_USER; executives additionally carry ROLE_ADMIN.
func (e *Employee) Roles() []string {
	roles := []string{constant.RoleUser}
	if _, ok := adminPositions[e.Position]; ok {
		roles = append(roles, constant.RoleAdmin)
	}
	return roles
}
