package repo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFilterColumn = errors.New("unknown filter column")
	ErrUnsupportedOp       = errors.New("unsupported filter operator")
)

type Op int

const (
	OpEq Op = iota
	OpIn
	OpIsNull
	OpNotNull
	// OpNotFalse matches true and NULL, e.g. an optional boolean flag on a
	// left-joined table.
	OpNotFalse
)

// Filter is a storage-agnostic predicate on a named column.
type Filter struct {
	Column string
	Op     Op
	Value  any
}

func Eq(column string, value any) Filter {
	return Filter{Column: column, Op: OpEq, Value: value}
}

func In(column string, values any) Filter {
	return Filter{Column: column, Op: OpIn, Value: values}
}

func IsNull(column string) Filter {
	return Filter{Column: column, Op: OpIsNull}
}

func NotNull(column string) Filter {
	return Filter{Column: column, Op: OpNotNull}
}

func NotFalse(column string) Filter {
	return Filter{Column: column, Op: OpNotFalse}
}

// BuildWhere renders filters as SQL clauses with positional arguments
// starting at $argPos. columns maps filter column names to SQL expressions;
// names missing from it are rejected.
func BuildWhere(filters []Filter, columns map[string]string, argPos int) ([]string, []any, error) {
	where := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for _, f := range filters {
		expr, ok := columns[f.Column]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownFilterColumn, f.Column)
		}
		switch f.Op {
		case OpEq:
			where = append(where, fmt.Sprintf("%s = $%d", expr, argPos))
			args = append(args, f.Value)
			argPos++
		case OpIn:
			where = append(where, fmt.Sprintf("%s = ANY($%d)", expr, argPos))
			args = append(args, f.Value)
			argPos++
		case OpIsNull:
			where = append(where, expr+" IS NULL")
		case OpNotNull:
			where = append(where, expr+" IS NOT NULL")
		case OpNotFalse:
			where = append(where, expr+" IS NOT FALSE")
		default:
			return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedOp, f.Op)
		}
	}
	return where, args, nil
}

// TenantQuery appends to base a WHERE clause scoping rows to tenantID via
// tenantColumn plus the rendered filters, and an ORDER BY when orderBy is
// set. The tenant is always $1.
func TenantQuery(base, tenantColumn string, tenantID any, filters []Filter, columns map[string]string, orderBy string) (string, []any, error) {
	where, args, err := BuildWhere(filters, columns, 2)
	if err != nil {
		return "", nil, err
	}
	where = append([]string{tenantColumn + " = $1"}, where...)
	args = append([]any{tenantID}, args...)

	query := base + "\n        WHERE " + strings.Join(where, " AND ")
	if orderBy != "" {
		query += "\n        ORDER BY " + orderBy
	}
	return query, args, nil
}
