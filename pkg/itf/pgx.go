package itf

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errNotImplemented = errors.New("itf: not implemented")

// Tx is a pgx.Tx whose queries are answered by the configured funcs.
type Tx struct {
	QueryFunc    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row
	ExecFunc     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

	Committed  bool
	RolledBack bool
}

var _ pgx.Tx = (*Tx)(nil)

func (t *Tx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *Tx) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *Tx) Rollback(ctx context.Context) error {
	t.RolledBack = true
	return nil
}

func (t *Tx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errNotImplemented
}

func (t *Tx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	return nil
}

func (t *Tx) LargeObjects() pgx.LargeObjects {
	return pgx.LargeObjects{}
}

func (t *Tx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errNotImplemented
}

func (t *Tx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	if t.ExecFunc == nil {
		return pgconn.CommandTag{}, nil
	}
	return t.ExecFunc(ctx, sql, arguments...)
}

func (t *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if t.QueryFunc == nil {
		return nil, errors.New("query not implemented")
	}
	return t.QueryFunc(ctx, sql, args...)
}

func (t *Tx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if t.QueryRowFunc == nil {
		return Row{ScanFunc: func(dest ...any) error { return errors.New("query row not implemented") }}
	}
	return t.QueryRowFunc(ctx, sql, args...)
}

func (t *Tx) Conn() *pgx.Conn { return nil }

// Rows replays Data; each scan destination receives the value at the same
// position. A nil value zeroes the destination.
type Rows struct {
	Data    [][]any
	Failure error
	idx     int
}

var _ pgx.Rows = (*Rows)(nil)

func NewRows(data ...[]any) *Rows {
	return &Rows{Data: data}
}

func (r *Rows) Next() bool {
	if r.idx >= len(r.Data) {
		return false
	}
	r.idx++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.Data) {
		return errors.New("no current row to scan")
	}
	return assign(r.Data[r.idx-1], dest)
}

func (r *Rows) Values() ([]any, error) {
	if r.idx == 0 || r.idx > len(r.Data) {
		return nil, errors.New("no current row")
	}
	return r.Data[r.idx-1], nil
}

func (r *Rows) RawValues() [][]byte { return nil }
func (r *Rows) Err() error          { return r.Failure }
func (r *Rows) Close()              {}
func (r *Rows) CommandTag() pgconn.CommandTag {
	return pgconn.CommandTag{}
}
func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *Rows) Conn() *pgx.Conn                              { return nil }

type Row struct {
	ScanFunc func(dest ...any) error
}

func (r Row) Scan(dest ...any) error {
	if r.ScanFunc == nil {
		return errors.New("scan not implemented")
	}
	return r.ScanFunc(dest...)
}

// ValuesRow answers Scan with values.
func ValuesRow(values ...any) Row {
	return Row{ScanFunc: func(dest ...any) error { return assign(values, dest) }}
}

func assign(row []any, dest []any) error {
	if len(dest) != len(row) {
		return fmt.Errorf("destination length %d does not match row length %d", len(dest), len(row))
	}
	for i, target := range dest {
		ptr := reflect.ValueOf(target)
		if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
			return fmt.Errorf("scan target %d: %T is not a pointer", i, target)
		}
		elem := ptr.Elem()
		if row[i] == nil {
			elem.Set(reflect.Zero(elem.Type()))
			continue
		}
		src := reflect.ValueOf(row[i])
		switch {
		case src.Type().AssignableTo(elem.Type()):
			elem.Set(src)
		case elem.Kind() == reflect.Pointer && src.Type().AssignableTo(elem.Type().Elem()):
			v := reflect.New(elem.Type().Elem())
			v.Elem().Set(src)
			elem.Set(v)
		default:
			return fmt.Errorf("scan target %d: cannot assign %T to %T", i, row[i], target)
		}
	}
	return nil
}
