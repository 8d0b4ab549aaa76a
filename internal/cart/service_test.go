package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStartsCartAndMergesLines(t *testing.T) {
	svc := NewService()
	productID := uuid.New()

	token, entries, err := svc.Add("", productID, 2)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)

	sameToken, entries, err := svc.Add(token, productID, 1)
	require.NoError(t, err)
	assert.Equal(t, token, sameToken)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Quantity)
}

func TestAddValidation(t *testing.T) {
	svc := NewService()

	_, _, err := svc.Add("", uuid.Nil, 1)
	assert.Error(t, err)
	_, _, err = svc.Add("", uuid.New(), 0)
	assert.Error(t, err)
}

func TestSetQuantityAndRemove(t *testing.T) {
	svc := NewService()
	productID := uuid.New()
	token, _, err := svc.Add("", productID, 2)
	require.NoError(t, err)

	entries, err := svc.SetQuantity(token, productID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, entries[0].Quantity)

	entries, err = svc.SetQuantity(token, productID, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSetQuantityUnknownCartOrLine(t *testing.T) {
	svc := NewService()

	_, err := svc.SetQuantity("missing", uuid.New(), 1)
	assert.Error(t, err)

	token, _, err := svc.Add("", uuid.New(), 1)
	require.NoError(t, err)
	_, err = svc.SetQuantity(token, uuid.New(), 1)
	assert.Error(t, err)
}

func TestClearAndIsolation(t *testing.T) {
	svc := NewService()
	productID := uuid.New()
	token, _, err := svc.Add("", productID, 1)
	require.NoError(t, err)

	otherToken, _, err := svc.Add("", uuid.New(), 4)
	require.NoError(t, err)
	require.NotEqual(t, token, otherToken)

	svc.Clear(token)
	assert.Empty(t, svc.Get(token))
	assert.Len(t, svc.Get(otherToken), 1)
}

func TestGetReturnsDetachedCopy(t *testing.T) {
	svc := NewService()
	productID := uuid.New()
	token, _, err := svc.Add("", productID, 1)
	require.NoError(t, err)

	entries := svc.Get(token)
	entries[0].Quantity = 99

	assert.Equal(t, 1, svc.Get(token)[0].Quantity)
}
