package queries_test

import (
	"testing"

	"fabrication/internal/core/application/usecases/queries"
	"fabrication/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderItemsQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderItemsQuery(orderID)

	require.NoError(t, err)
	assert.True(t, orderID.IsEqual(query.OrderID()))
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderItemsQuery_EmptyOrderID(t *testing.T) {
	_, err := queries.NewGetOrderItemsQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetOrderItemsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderItemsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderItemsQueryIsNotConstructed)
}
