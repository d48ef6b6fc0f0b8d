package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// sqlWriter accumulates SQL text and positional args with $n placeholders.
type sqlWriter struct {
	buf  strings.Builder
	args []any
	next int
}

func newSQLWriter() *sqlWriter {
	return &sqlWriter{next: 1}
}

func (w *sqlWriter) text(s string) {
	w.buf.WriteString(s)
}

func (w *sqlWriter) arg(value any) {
	w.buf.WriteString("$" + strconv.Itoa(w.next))
	w.args = append(w.args, value)
	w.next++
}

// Condition renders one WHERE predicate.
type Condition interface {
	render(w *sqlWriter)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) render(w *sqlWriter) {
	w.text(c.column)
	w.text(" = ")
	w.arg(c.value)
}

type inCondition struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) render(w *sqlWriter) {
	if len(c.values) == 0 {
		w.text("1=0")
		return
	}

	w.text(c.column)
	w.text(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.text(", ")
		}
		w.arg(v)
	}
	w.text(")")
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) render(w *sqlWriter) {
	w.text(c.column)
	w.text(" IS NULL")
}

type iLikeCondition struct {
	column  string
	pattern string
}

// ILike matches case-insensitively; the pattern is passed as an argument.
func ILike(column, pattern string) Condition {
	return iLikeCondition{column: column, pattern: pattern}
}

func (c iLikeCondition) render(w *sqlWriter) {
	w.text(c.column)
	w.text(" ILIKE ")
	w.arg(c.pattern)
}

type exprCondition struct {
	expr string
	args []any
}

// Expr injects raw SQL; ? placeholders are rewritten to positional $n args.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) render(w *sqlWriter) {
	if len(c.args) == 0 {
		w.text(c.expr)
		return
	}

	next := 0
	for i := 0; i < len(c.expr); i++ {
		if c.expr[i] == '?' && next < len(c.args) {
			w.arg(c.args[next])
			next++
			continue
		}
		w.buf.WriteByte(c.expr[i])
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := newSQLWriter()
	w.text("SELECT ")
	w.text(strings.Join(b.columns, ", "))
	w.text(" FROM ")
	w.text(b.table)
	renderWhere(w, b.where)
	if len(b.orderBy) > 0 {
		w.text(" ORDER BY ")
		w.text(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.text(" LIMIT ")
		w.text(strconv.Itoa(b.limit))
	}

	return w.buf.String(), w.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends raw SQL after the VALUES list, e.g. an ON CONFLICT clause.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	w := newSQLWriter()
	w.text("INSERT INTO ")
	w.text(b.table)
	w.text(" (")
	w.text(strings.Join(b.columns, ", "))
	w.text(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.text(", ")
		}
		w.text("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.text(", ")
			}
			w.arg(value)
		}
		w.text(")")
	}

	if b.suffix != "" {
		w.text(" ")
		w.text(b.suffix)
	}

	return w.buf.String(), w.args, nil
}

type UpdateBuilder struct {
	table string
	sets  []Condition
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, eqCondition{column: column, value: value})
	return b
}

func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, exprCondition{expr: column + " = " + expr, args: args})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	w := newSQLWriter()
	w.text("UPDATE ")
	w.text(b.table)
	w.text(" SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.text(", ")
		}
		s.render(w)
	}
	renderWhere(w, b.where)

	return w.buf.String(), w.args, nil
}

func renderWhere(w *sqlWriter, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.text(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.text(" AND ")
		}
		c.render(w)
	}
}
