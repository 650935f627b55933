package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// argList collects bind values and hands out $n placeholders in order.
type argList struct {
	values []any
}

func (a *argList) bind(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// rewrite replaces each ? in expr with the next $n placeholder, binding
// exprArgs in order. Extra ? markers are left untouched.
func (a *argList) rewrite(expr string, exprArgs []any) string {
	if len(exprArgs) == 0 {
		return expr
	}

	var out strings.Builder
	used := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && used < len(exprArgs) {
			out.WriteString(a.bind(exprArgs[used]))
			used++
			continue
		}
		out.WriteByte(expr[i])
	}
	return out.String()
}

// Condition renders one WHERE fragment, binding its values as it goes.
type Condition interface {
	render(a *argList) string
}

type eqCond struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCond{column: column, value: value}
}

func (c eqCond) render(a *argList) string {
	return c.column + " = " + a.bind(c.value)
}

type inCond struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCond{column: column, values: values}
}

func (c inCond) render(a *argList) string {
	if len(c.values) == 0 {
		return "1=0"
	}

	parts := make([]string, len(c.values))
	for i, v := range c.values {
		parts[i] = a.bind(v)
	}
	return c.column + " IN (" + strings.Join(parts, ", ") + ")"
}

type isNullCond struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCond{column: column}
}

func (c isNullCond) render(*argList) string {
	return c.column + " IS NULL"
}

type exprCond struct {
	expr string
	args []any
}

// Expr is an escape hatch for fragments the typed conditions cannot
// express. Use ? for bind markers.
func Expr(expr string, args ...any) Condition {
	return exprCond{expr: expr, args: args}
}

func (c exprCond) render(a *argList) string {
	return a.rewrite(c.expr, c.args)
}

type eqLiteralCond struct {
	column string
	value  string
}

// EqLiteral inlines a quoted string instead of binding it. Only for
// values that must appear in the statement text itself.
func EqLiteral(column, value string) Condition {
	return eqLiteralCond{column: column, value: value}
}

func (c eqLiteralCond) render(*argList) string {
	return c.column + " = '" + strings.ReplaceAll(c.value, "'", "''") + "'"
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	groupBy []string
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

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
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

	a := &argList{}
	var buf strings.Builder
	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)
	writeWhere(&buf, a, b.where)

	if len(b.groupBy) > 0 {
		buf.WriteString(" GROUP BY ")
		buf.WriteString(strings.Join(b.groupBy, ", "))
	}
	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(b.limit))
	}

	return buf.String(), a.values, nil
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

	a := &argList{}
	rowSQL := make([]string, len(b.rows))
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		cells := make([]string, len(row))
		for colIdx, value := range row {
			cells[colIdx] = a.bind(value)
		}
		rowSQL[rowIdx] = "(" + strings.Join(cells, ", ") + ")"
	}

	var buf strings.Builder
	buf.WriteString("INSERT INTO ")
	buf.WriteString(b.table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(") VALUES ")
	buf.WriteString(strings.Join(rowSQL, ", "))
	if b.suffix != "" {
		buf.WriteString(" ")
		buf.WriteString(a.rewrite(b.suffix, nil))
	}

	return buf.String(), a.values, nil
}

type setClause struct {
	column   string
	value    any
	expr     string
	exprArgs []any
	isExpr   bool
}

type UpdateBuilder struct {
	table  string
	sets   []setClause
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

// SetExpr assigns a raw SQL expression, with ? bind markers rewritten to
// $n placeholders.
func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, expr: expr, exprArgs: args, isExpr: true})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	a := &argList{}
	assignments := make([]string, len(b.sets))
	for i, s := range b.sets {
		if s.isExpr {
			assignments[i] = s.column + " = " + a.rewrite(s.expr, s.exprArgs)
			continue
		}
		assignments[i] = s.column + " = " + a.bind(s.value)
	}

	var buf strings.Builder
	buf.WriteString("UPDATE ")
	buf.WriteString(b.table)
	buf.WriteString(" SET ")
	buf.WriteString(strings.Join(assignments, ", "))
	writeWhere(&buf, a, b.where)
	if b.suffix != "" {
		buf.WriteString(" ")
		buf.WriteString(a.rewrite(b.suffix, nil))
	}

	return buf.String(), a.values, nil
}

func writeWhere(buf *strings.Builder, a *argList, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	parts := make([]string, len(conditions))
	for i, c := range conditions {
		parts[i] = c.render(a)
	}
	buf.WriteString(" WHERE ")
	buf.WriteString(strings.Join(parts, " AND "))
}
