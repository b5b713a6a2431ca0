package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/xuri/excelize/v2"
)

// 시트 컬럼 순서
const (
	colName = iota
	colRating
	colImageURL
	colPhoneNumber
	colAddress
)

type rowError struct {
	Row int // 1-based sheet row
	Err error
}

type importResult struct {
	Restaurants []*model.Restaurant
	Skipped     []rowError
}

// readRestaurantsFromXLSX reads the first sheet. The first row is a header;
// every other row is validated like an API create and skipped when invalid.
func readRestaurantsFromXLSX(filePath string) (*importResult, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	result := &importResult{}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if isBlankRow(row) {
			continue
		}

		restaurant, err := parseRestaurantRow(row)
		if err != nil {
			result.Skipped = append(result.Skipped, rowError{Row: i + 1, Err: err})
			continue
		}
		result.Restaurants = append(result.Restaurants, restaurant)
	}
	return result, nil
}

func parseRestaurantRow(row []string) (*model.Restaurant, error) {
	fields := model.RestaurantFields{
		Name:        cell(row, colName),
		ImageURL:    optionalCell(row, colImageURL),
		PhoneNumber: optionalCell(row, colPhoneNumber),
		Address:     optionalCell(row, colAddress),
	}

	if raw := optionalCell(row, colRating); raw != nil {
		rating, err := strconv.ParseFloat(*raw, 64)
		if err != nil {
			return nil, fmt.Errorf("rating %q is not a number", *raw)
		}
		fields.Rating = &rating
	}

	return model.NewRestaurant(fields)
}

// importRestaurants saves all restaurants in one transaction.
func importRestaurants(ctx context.Context, tm repository.TransactionManager, restaurants []*model.Restaurant) error {
	return tm.Execute(ctx, func(tx repository.Repositories) error {
		for _, r := range restaurants {
			if err := tx.Restaurants().Create(ctx, r); err != nil {
				return fmt.Errorf("restaurant %q: %w", r.Name, err)
			}
		}
		return nil
	})
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func optionalCell(row []string, idx int) *string {
	v := cell(row, idx)
	if v == "" {
		return nil
	}
	return &v
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
