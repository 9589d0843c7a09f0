package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColumns(t *testing.T) {
	t.Run("japanese header", func(t *testing.T) {
		cols, err := ResolveColumns([]string{"月", "タスク", "チェック", "日", "曜日", "場所", "価格", "商品名"})
		require.NoError(t, err)

		assert.Equal(t, 3, cols.Day)
		assert.Equal(t, 5, cols.Place)
		assert.Equal(t, 6, cols.Amount)
		assert.Equal(t, 7, cols.Description)
		assert.Empty(t, cols.Categories)
	})

	t.Run("english header", func(t *testing.T) {
		cols, err := ResolveColumns([]string{"Day", "Place", "Price", "Item"})
		require.NoError(t, err)

		assert.Equal(t, 0, cols.Day)
		assert.Equal(t, 1, cols.Place)
		assert.Equal(t, 2, cols.Amount)
		assert.Equal(t, 3, cols.Description)
	})

	t.Run("first day column wins", func(t *testing.T) {
		cols, err := ResolveColumns([]string{"日", "日", "場所", "金額", "商品"})
		require.NoError(t, err)
		assert.Equal(t, 0, cols.Day)
	})

	t.Run("曜日 is not a day column", func(t *testing.T) {
		_, err := ResolveColumns([]string{"曜日", "場所", "金額", "商品"})
		var missing *MissingColumnsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"day"}, missing.Missing)
	})

	t.Run("missing mandatory columns", func(t *testing.T) {
		_, err := ResolveColumns([]string{"メモ", "合計"})
		var missing *MissingColumnsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"day", "place", "amount", "description"}, missing.Missing)
	})

	t.Run("category and subcategory columns", func(t *testing.T) {
		cols, err := ResolveColumns([]string{"日", "場所", "価格", "商品", "食品", "食品内訳", "日用品", "光熱費"})
		require.NoError(t, err)

		require.Len(t, cols.Categories, 3)
		assert.Equal(t, CategoryColumn{Index: 4, Label: "食品"}, cols.Categories[0])
		assert.Equal(t, CategoryColumn{Index: 6, Label: "日用品"}, cols.Categories[1])
		assert.Equal(t, CategoryColumn{Index: 7, Label: "光熱費"}, cols.Categories[2])
		assert.Equal(t, map[string]int{"食品": 5}, cols.Subcategories)
	})

	t.Run("unknown labels ignored", func(t *testing.T) {
		cols, err := ResolveColumns([]string{"日", "場所", "金額", "商品", "謎の列", ""})
		require.NoError(t, err)
		assert.Empty(t, cols.Categories)
		assert.Empty(t, cols.Subcategories)
	})
}
