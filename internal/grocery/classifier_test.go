package grocery_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/pantry/internal/grocery"
)

func TestMapToGroceryCategory(t *testing.T) {
	tests := []struct {
		input string
		want  grocery.Category
	}{
		{"Fridge", grocery.Dairy},
		{"randomstuff", grocery.General},
		{"produce", grocery.Produce},
		{"  Veggies ", grocery.Produce},
		{"MEAT_AND_SEAFOOD", grocery.MeatSeafood},
		{"meat & seafood", grocery.MeatSeafood},
		{"cold-cuts", grocery.Deli},
		{"Baked Goods", grocery.Bakery},
		{"pantry", grocery.GrainsPasta},
		{"tinned", grocery.CannedGoods},
		{"Condiments", grocery.CondimentsSauces},
		{"cheeses", grocery.Dairy},
		{"candy", grocery.Snacks},
		{"drinks", grocery.Beverages},
		{"freezer", grocery.Frozen},
		{"", grocery.General},
		{"   ", grocery.General},
		{"Other", grocery.General},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, grocery.MapToGroceryCategory(tt.input), "MapToGroceryCategory(%q)", tt.input)
	}
}

func TestMapToGroceryCategory_TotalOverArbitraryInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune("abcdefghijklmnopqrstuvwxyz &-_ÄéÜ")
	for i := 0; i < 500; i++ {
		n := rng.Intn(16)
		buf := make([]rune, n)
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		cat := grocery.MapToGroceryCategory(string(buf))
		assert.GreaterOrEqual(t, cat.Index(), 0)
		assert.LessOrEqual(t, cat.Index(), grocery.General.Index())
	}
}

func TestCategoryOrder(t *testing.T) {
	cats := grocery.Categories()
	require.Len(t, cats, 12)

	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.String())
	}
	assert.Equal(t, []string{
		"Produce", "Dairy", "Meat & Seafood", "Deli", "Bakery", "Grains & Pasta",
		"Canned Goods", "Condiments & Sauces", "Snacks", "Beverages", "Frozen", "General",
	}, names)
	assert.Equal(t, grocery.General, cats[len(cats)-1])
}

func sampleList() []grocery.ListItem {
	return []grocery.ListItem{
		{ID: "1", Name: "Ice cream", Quantity: 1, Category: "frozen"},
		{ID: "2", Name: "Batteries", Quantity: 4, Category: "household"},
		{ID: "3", Name: "Apples", Quantity: 6, Category: "fruit"},
		{ID: "4", Name: "Milk", Quantity: 1, Category: "Fridge"},
		{ID: "5", Name: "Bananas", Quantity: 5, Category: "produce"},
		{ID: "6", Name: "Salami", Quantity: 1, Category: "deli"},
		{ID: "7", Name: "Sparkling water", Quantity: 2, Category: "drinks"},
	}
}

func ids(items []grocery.ListItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestSortItemsByGroceryLogic(t *testing.T) {
	items := sampleList()
	sorted := grocery.SortItemsByGroceryLogic(items)

	assert.Equal(t, []string{"3", "5", "4", "6", "7", "1", "2"}, ids(sorted))
	// input untouched
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, ids(items))
}

func TestSortItemsByGroceryLogic_ConsistentAcrossPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := sampleList()

	for i := 0; i < 50; i++ {
		perm := make([]grocery.ListItem, len(base))
		copy(perm, base)
		rng.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })

		sorted := grocery.SortItemsByGroceryLogic(perm)
		require.Len(t, sorted, len(base))
		for j := 1; j < len(sorted); j++ {
			prev := grocery.CategoryOf(sorted[j-1]).Index()
			cur := grocery.CategoryOf(sorted[j]).Index()
			assert.LessOrEqual(t, prev, cur, "permutation %d position %d", i, j)
		}
	}
}

func TestSortItemsByGroceryLogic_Empty(t *testing.T) {
	assert.Empty(t, grocery.SortItemsByGroceryLogic(nil))
}

func TestGroupItemsByGroceryCategory(t *testing.T) {
	groups := grocery.GroupItemsByGroceryCategory(sampleList())

	assert.Len(t, groups, 6)
	assert.Equal(t, []string{"3", "5"}, ids(groups[grocery.Produce]))
	assert.Equal(t, []string{"2"}, ids(groups[grocery.General]))
	_, hasBakery := groups[grocery.Bakery]
	assert.False(t, hasBakery)
}

func TestGroups_AisleOrder(t *testing.T) {
	groups := grocery.Groups(sampleList())

	var order []grocery.Category
	for _, g := range groups {
		order = append(order, g.Category)
	}
	assert.Equal(t, []grocery.Category{
		grocery.Produce, grocery.Dairy, grocery.Deli, grocery.Beverages, grocery.Frozen, grocery.General,
	}, order)
}

func TestCategoryJSON(t *testing.T) {
	out, err := json.Marshal(map[grocery.Category]int{grocery.MeatSeafood: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Meat & Seafood": 2}`, string(out))

	var cat grocery.Category
	require.NoError(t, json.Unmarshal([]byte(`"fridge"`), &cat))
	assert.Equal(t, grocery.Dairy, cat)
}

func TestIsCatchAll(t *testing.T) {
	assert.True(t, grocery.IsCatchAll("household"))
	assert.True(t, grocery.IsCatchAll(""))
	assert.False(t, grocery.IsCatchAll("bakery"))
}
