package mappers

import (
	"github.com/iota-uz/backoffice/modules/security/domain/aggregates/user"
	"github.com/iota-uz/backoffice/modules/security/presentation/viewmodels"
)

const (
	NoName      = "---"
	NoProfile   = "Sem perfil"
	DateDisplay = "02/01/2006"
)

var roleLabels = map[string]string{
	"operacional":   "Operacional",
	"socio":         "Sócio",
	"administrador": "Administrador",
	"cliente":       "Cliente",
}

// RoleLabel prefers the assigned access profile over the legacy role.
func RoleLabel(u user.User) string {
	if ap := u.AccessProfile(); ap != nil && ap.Name != "" {
		return ap.Name
	}
	if l, ok := roleLabels[u.Role()]; ok {
		return l
	}
	if u.Role() != "" {
		return u.Role()
	}
	return NoProfile
}

func UserToRow(u user.User) viewmodels.User {
	name := u.FullName()
	if name == "" {
		name = NoName
	}
	ap := u.AccessProfile()
	return viewmodels.User{
		ID:            u.ID().String(),
		Name:          name,
		Email:         u.Email(),
		Role:          RoleLabel(u),
		SystemProfile: ap != nil && ap.System,
		CreatedAt:     u.CreatedAt().Format(DateDisplay),
	}
}
