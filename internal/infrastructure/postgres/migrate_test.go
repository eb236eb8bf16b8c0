package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_OrdenadasYNoVacias(t *testing.T) {
	list, err := Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, list)

	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name, "las migraciones deben aplicarse en orden")
	}
	for _, m := range list {
		assert.NotEmpty(t, strings.TrimSpace(m.SQL), m.Name)
	}
}

func TestMigrations_EsquemaIncluyeTablasDelPedido(t *testing.T) {
	list, err := Migrations()
	require.NoError(t, err)

	schema := list[0].SQL
	for _, table := range []string{"users", "products", "cart", "orders", "order_items", "payments", "sessions"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
	// El upsert del carrito depende de la unicidad (user_id, product_id).
	assert.Contains(t, schema, "PRIMARY KEY (user_id, product_id)")
	assert.Contains(t, schema, "users_email_key")
}
