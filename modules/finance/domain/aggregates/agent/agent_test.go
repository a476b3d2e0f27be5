package agent

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAgent_Roles(t *testing.T) {
	t.Parallel()

	roles := []Role{RoleCustomer, RoleSupplies}
	a := Hydrate(uuid.New(), uuid.New(), " Acme ", "", "", "BR", Company, roles, nil)
	require.Equal(t, "Acme", a.Name())
	require.True(t, a.HasRole(RoleStockSupplier, RoleSupplies))
	require.False(t, a.HasRole(RoleProvider))

	roles[0] = RoleBank
	got := a.Roles()
	require.Equal(t, []Role{RoleCustomer, RoleSupplies}, got)
	got[0] = RoleBank
	require.True(t, a.HasRole(RoleCustomer))
}
