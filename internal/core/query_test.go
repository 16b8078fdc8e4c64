// AngelaMos | 2026
// query_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBuilder_Build(t *testing.T) {
	b := NewUpdateBuilder()
	b.Set("name", "Widget").
		Set("price", 9.99).
		Set("is_active", false)

	query, args := b.Build("products", 42, "id, name")

	assert.Equal(t,
		"UPDATE products SET name = $1, price = $2, is_active = $3, "+
			"updated_at = NOW() WHERE id = $4 AND is_active = true "+
			"RETURNING id, name",
		query,
	)
	assert.Equal(t, []any{"Widget", 9.99, false, int64(42)}, args)
}

func TestUpdateBuilder_ParamsStayContiguous(t *testing.T) {
	b := NewUpdateBuilder()
	for _, col := range []string{"a", "b", "c", "d", "e"} {
		b.Set(col, col)
	}

	query, args := b.Build("t", 1, "*")

	for i := 1; i <= 6; i++ {
		assert.Contains(t, query, "$"+string(rune('0'+i)))
	}
	assert.NotContains(t, query, "$7")
	assert.Len(t, args, 6)
}

func TestUpdateBuilder_ZeroValuesAreSet(t *testing.T) {
	// A caller that saw the key in the patch must be able to write 0,
	// false, and "" like any other value.
	b := NewUpdateBuilder()
	b.Set("stock_quantity", 0).
		Set("is_active", false).
		Set("description", "")

	require.False(t, b.Empty())
	assert.Equal(t, []any{0, false, ""}, b.Args())
}

func TestUpdateBuilder_SingleField(t *testing.T) {
	b := NewUpdateBuilder()
	b.Set("price", 150.0)

	query, args := b.Build("products", 42, "*")

	assert.Equal(t, []any{150.0, int64(42)}, args)
	assert.Equal(t, 1, strings.Count(query, "updated_at = NOW()"))
	assert.Contains(t, query, "WHERE id = $2")
}

func TestUpdateBuilder_Empty(t *testing.T) {
	b := NewUpdateBuilder()

	assert.True(t, b.Empty())

	b.Set("name", "x")
	assert.False(t, b.Empty())
}

func TestListBuilder_CountAndPageShareWhere(t *testing.T) {
	b := NewListBuilder("is_active = true")
	b.Where("role", "manager")

	countQuery, countArgs := b.CountQuery("users")
	pageQuery, pageArgs := b.PageQuery("users", "*", "created_at DESC", 10, 20)

	assert.Equal(t,
		"SELECT COUNT(*) FROM users WHERE is_active = true AND role = $1",
		countQuery,
	)
	assert.Equal(t,
		"SELECT * FROM users WHERE is_active = true AND role = $1 "+
			"ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		pageQuery,
	)
	assert.Equal(t, []any{"manager"}, countArgs)
	assert.Equal(t, []any{"manager", 10, 20}, pageArgs)
}

func TestListBuilder_SearchBindsOneParam(t *testing.T) {
	b := NewListBuilder("is_active = true")
	b.Search("wid", "name", "description")

	query, args := b.CountQuery("products")

	assert.Equal(t,
		"SELECT COUNT(*) FROM products WHERE is_active = true AND "+
			"(name ILIKE $1 OR description ILIKE $1)",
		query,
	)
	require.Len(t, args, 1)
	assert.Equal(t, "%wid%", args[0])
}

func TestListBuilder_SearchEmptyTermIsNoop(t *testing.T) {
	b := NewListBuilder("is_active = true")
	b.Search("", "name")

	query, args := b.CountQuery("products")

	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE is_active = true", query)
	assert.Empty(t, args)
}

func TestListBuilder_SearchThenFilter(t *testing.T) {
	b := NewListBuilder("p.is_active = true")
	b.Search("cable", "p.name", "p.description")
	b.Where("p.category_id", int64(7))

	_, args := b.PageQuery("products p", "p.*", "p.created_at DESC", 150, 42)

	assert.Equal(t, []any{"%cable%", int64(7), 150, 42}, args)
}

func TestListBuilder_NoConditions(t *testing.T) {
	b := NewListBuilder()

	query, args := b.CountQuery("products")

	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE TRUE", query)
	assert.Empty(t, args)
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"50%", "50\\%"},
		{"snake_case", "snake\\_case"},
		{"back\\slash", "back\\\\slash"},
		{"%_\\", "\\%\\_\\\\"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeLike(tt.in), "input %q", tt.in)
	}
}
