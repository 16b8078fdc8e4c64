// AngelaMos | 2026
// query.go

package core

import (
	"fmt"
	"strings"
)

// UpdateBuilder accumulates SET clauses for a partial update. Columns are
// added in call order, so repositories iterate their patch fields in one
// declared order and parameter indices stay contiguous from $1. Values never
// touch the query text; they only travel as positional parameters.
type UpdateBuilder struct {
	clauses []string
	args    []any
}

func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.clauses = append(b.clauses, fmt.Sprintf("%s = $%d", column, len(b.args)+1))
	b.args = append(b.args, value)
	return b
}

// Empty reports whether no fields were set. Callers treat an empty patch as
// a read, not a write.
func (b *UpdateBuilder) Empty() bool {
	return len(b.clauses) == 0
}

// Build emits the UPDATE statement with a trailing updated_at stamp and the
// row id as the final positional parameter. The is_active guard makes a
// soft-deleted row behave exactly like a missing one.
func (b *UpdateBuilder) Build(table string, id int64, projection string) (string, []any) {
	clauses := append(b.clauses, "updated_at = NOW()")
	args := append(b.args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d AND is_active = true RETURNING %s",
		table,
		strings.Join(clauses, ", "),
		len(args),
		projection,
	)

	return query, args
}

// Args exposes the accumulated parameters for inspection in tests.
func (b *UpdateBuilder) Args() []any {
	return b.args
}

// ListBuilder composes the shared WHERE clause for a count query and a
// windowed page query. Predicates append in call order, so both statements
// see identical parameter positions for the shared prefix; the page query
// then claims the next two positions for LIMIT and OFFSET.
type ListBuilder struct {
	conditions []string
	args       []any
}

func NewListBuilder(base ...string) *ListBuilder {
	b := &ListBuilder{}
	b.conditions = append(b.conditions, base...)
	return b
}

func (b *ListBuilder) Where(column string, value any) *ListBuilder {
	b.conditions = append(
		b.conditions,
		fmt.Sprintf("%s = $%d", column, len(b.args)+1),
	)
	b.args = append(b.args, value)
	return b
}

// Search appends one ILIKE predicate OR-ed across columns, bound to a single
// parameter reused for every column.
func (b *ListBuilder) Search(term string, columns ...string) *ListBuilder {
	if term == "" || len(columns) == 0 {
		return b
	}

	idx := len(b.args) + 1
	predicates := make([]string, 0, len(columns))
	for _, col := range columns {
		predicates = append(predicates, fmt.Sprintf("%s ILIKE $%d", col, idx))
	}

	b.conditions = append(
		b.conditions,
		"("+strings.Join(predicates, " OR ")+")",
	)
	b.args = append(b.args, "%"+EscapeLike(term)+"%")
	return b
}

func (b *ListBuilder) whereClause() string {
	if len(b.conditions) == 0 {
		return "TRUE"
	}
	return strings.Join(b.conditions, " AND ")
}

func (b *ListBuilder) CountQuery(table string) (string, []any) {
	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE %s",
		table,
		b.whereClause(),
	)
	return query, b.args
}

// PageQuery emits the windowed select. orderBy must be a stable key so pages
// do not shuffle between requests.
func (b *ListBuilder) PageQuery(
	table, projection, orderBy string,
	limit, offset int,
) (string, []any) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		projection,
		table,
		b.whereClause(),
		orderBy,
		len(b.args)+1,
		len(b.args)+2,
	)

	args := make([]any, 0, len(b.args)+2)
	args = append(args, b.args...)
	args = append(args, limit, offset)

	return query, args
}

func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
