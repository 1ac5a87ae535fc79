package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/pantry/internal/grocery"
	"github.com/tayloree/pantry/internal/match"
	"github.com/tayloree/pantry/internal/validation"
)

func TestStruct_ListItem(t *testing.T) {
	ok := grocery.ListItem{ID: "1", Name: "Milk", Quantity: 1}
	assert.NoError(t, validation.Struct(&ok))

	bad := grocery.ListItem{ID: "", Name: "Milk", Quantity: 0}
	err := validation.Struct(&bad)
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "ID", verr.Fields[0].Field)
	assert.Equal(t, "ID is required", verr.Fields[0].Message)
	assert.Equal(t, "Quantity must be greater than 0", verr.Fields[1].Message)
	assert.Equal(t, "ID is required; Quantity must be greater than 0", err.Error())
}

func TestStruct_Candidate(t *testing.T) {
	c := match.Candidate{ID: "c1", Tier: match.TierElite, Rating: 4.5}
	assert.NoError(t, validation.Struct(&c))

	c.Tier = "celebrity"
	c.Rating = 6
	err := validation.Struct(&c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tier must be one of: home professional elite")
	assert.Contains(t, err.Error(), "Rating must be less than or equal to 5")
}

func TestStruct_CriteriaBudgetOrder(t *testing.T) {
	r := match.RequestCriteria{BudgetMin: 200, BudgetMax: 100}
	err := validation.Struct(&r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BudgetMax must not be less than BudgetMin")

	r.BudgetMax = 200
	assert.NoError(t, validation.Struct(&r))
}

func TestSlice(t *testing.T) {
	items := []grocery.ListItem{
		{ID: "1", Name: "Milk", Quantity: 1},
		{ID: "2", Name: "", Quantity: 1},
	}
	err := validation.Slice(items, func(i grocery.ListItem) string { return i.ID })
	require.Error(t, err)
	assert.Equal(t, "record 2: Name is required", err.Error())

	assert.NoError(t, validation.Slice(items[:1], func(i grocery.ListItem) string { return i.ID }))
}
