package mappers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/agent"
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/bankaccount"
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/class"
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/costcenter"
	"github.com/iota-uz/backoffice/modules/finance/presentation/viewmodels"
)

func TestAgentToRow(t *testing.T) {
	t.Parallel()

	row := AgentToRow(agent.Hydrate(uuid.New(), uuid.Nil, "Ana", "", "", "BR", agent.Individual, nil, nil))
	require.Equal(t, "PF", row.PersonType)
	require.Equal(t, NoValue, row.TaxID)
	require.Equal(t, []string{NoRole}, row.Roles)

	row = AgentToRow(agent.Hydrate(uuid.New(), uuid.Nil, "Acme", "Acme Ltda", "123", "US", agent.Company,
		[]agent.Role{agent.RoleCustomer, agent.RoleFreight}, nil))
	require.Equal(t, "PJ", row.PersonType)
	require.Equal(t, "123", row.TaxID)
	require.Equal(t, []string{"cliente", "frete"}, row.Roles)
}

func TestAgentStatsOf(t *testing.T) {
	t.Parallel()

	hydrate := func(roles ...agent.Role) viewmodels.Agent {
		return AgentToRow(agent.Hydrate(uuid.New(), uuid.Nil, "x", "", "", "BR", agent.Company, roles, nil))
	}
	stats := AgentStatsOf([]viewmodels.Agent{
		hydrate(agent.RoleStockSupplier, agent.RoleCustomer),
		hydrate(agent.RoleSupplies),
		hydrate(agent.RoleProvider),
		hydrate(),
	})
	require.Equal(t, viewmodels.AgentStats{
		Total:          4,
		Suppliers:      2,
		StockSuppliers: 1,
		Customers:      1,
		Providers:      1,
	}, stats)
}

func TestBankAccountToRow(t *testing.T) {
	t.Parallel()

	row := BankAccountToRow(bankaccount.Hydrate(uuid.New(), uuid.Nil, "Itaú", "checking", "brl", "1", "", true))
	require.Equal(t, StatusActive, row.Status)
	require.Equal(t, "BRL", row.Currency)

	row = BankAccountToRow(bankaccount.Hydrate(uuid.New(), uuid.Nil, "Old", "savings", "USD", "", "", false))
	require.Equal(t, StatusInactive, row.Status)
}

func TestClassAndCostCenterToRow(t *testing.T) {
	t.Parallel()

	row := ClassToRow(class.Hydrate(uuid.New(), uuid.Nil, "Aluguel", "Despesas Fixas", "", ""))
	require.Equal(t, "Despesas Fixas", row.Group)
	require.Equal(t, NoLink, row.DRECategory)
	require.Equal(t, NoLink, row.CapitalFlowCategory)

	cc := CostCenterToRow(costcenter.Hydrate(uuid.New(), uuid.Nil, "ADM", "Administrativo", ""))
	require.Equal(t, NoLink, cc.Description)
}
