package usecase

import (
	"testing"

	"auth-platform/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppTypeTable(t *testing.T) {
	table, err := ParseAppTypeTable("1:customer-app,2:merchant-app, 3:operator-console")
	require.NoError(t, err)

	assert.Equal(t, entity.UserTypeCustomer, table["customer-app"])
	assert.Equal(t, entity.UserTypeMerchant, table["merchant-app"])
	assert.Equal(t, entity.UserTypeOperator, table["operator-console"])
}

func TestParseAppTypeTable_Empty(t *testing.T) {
	table, err := ParseAppTypeTable("")
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestParseAppTypeTable_Malformed(t *testing.T) {
	_, err := ParseAppTypeTable("customer-app")
	assert.Error(t, err)

	_, err = ParseAppTypeTable("x:customer-app")
	assert.Error(t, err)
}

func TestAppTypeTableResolve(t *testing.T) {
	table := AppTypeTable{
		"customer-app": entity.UserTypeCustomer,
	}

	userType, ok := table.Resolve("customer-app - 2.4.1")
	require.True(t, ok)
	assert.Equal(t, entity.UserTypeCustomer, userType)

	// Bare app name without a version suffix
	userType, ok = table.Resolve("customer-app")
	require.True(t, ok)
	assert.Equal(t, entity.UserTypeCustomer, userType)

	_, ok = table.Resolve("unknown-app - 1.0")
	assert.False(t, ok)

	_, ok = table.Resolve("")
	assert.False(t, ok)
}
