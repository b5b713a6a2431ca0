package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeSheet(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellName, &row))
	}

	path := filepath.Join(t.TempDir(), "restaurants.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadRestaurantsFromXLSX(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		{"name", "rating", "image_url", "phone_number", "address"},
		{"Noodle Bar", 4.5, "https://img.example.com/n.jpg", "555-1234", "1 Main St"},
		{"  Taco Stand  ", "", "", "", ""},
		{"", 3, "", "", ""},
		{"Too Good", 9, "", "", ""},
		{"Bad Phone", "", "", "call me", ""},
		{"Bad Rating", "great", "", "", ""},
		{},
		{"Dim Sum", "3.5"},
	})

	result, err := readRestaurantsFromXLSX(path)
	require.NoError(t, err)

	require.Len(t, result.Restaurants, 3)
	assert.Equal(t, "Noodle Bar", result.Restaurants[0].Name)
	require.NotNil(t, result.Restaurants[0].Rating)
	assert.Equal(t, 4.5, *result.Restaurants[0].Rating)
	assert.Equal(t, "Taco Stand", result.Restaurants[1].Name)
	assert.Nil(t, result.Restaurants[1].Rating)
	assert.Nil(t, result.Restaurants[1].Address)
	assert.Equal(t, "Dim Sum", result.Restaurants[2].Name)

	var skippedRows []int
	for _, s := range result.Skipped {
		skippedRows = append(skippedRows, s.Row)
	}
	assert.Equal(t, []int{4, 5, 6, 7}, skippedRows)
}

func TestReadRestaurantsFromXLSX_MissingFile(t *testing.T) {
	_, err := readRestaurantsFromXLSX(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestImportRestaurants(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)
	tm := repository.NewTransactionManager(testDB)
	ctx := context.Background()

	path := writeSheet(t, [][]interface{}{
		{"name", "rating"},
		{"Noodle Bar", 4},
		{"Taco Stand", 3},
	})
	result, err := readRestaurantsFromXLSX(path)
	require.NoError(t, err)

	require.NoError(t, importRestaurants(ctx, tm, result.Restaurants))

	restaurants, err := tm.Restaurants().List(ctx)
	require.NoError(t, err)
	assert.Len(t, restaurants, 2)
}
