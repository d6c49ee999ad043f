package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Beka01247/coffee-order/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

// ReadMenus reads a custom menu sheet. readRange defaults to columns A:C of
// the first sheet.
func (p *GoogleSheetsParser) ReadMenus(ctx context.Context, spreadsheetID, readRange string) ([]domain.Menu, error) {
	if readRange == "" {
		readRange = "A:C"
	}

	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	return ParseMenuRows(resp.Values)
}

// ParseMenuRows turns sheet rows into menus. The first row is a header.
// Columns are category, name and an optional sort order. A row with only a
// category starts a section; following rows with an empty category inherit
// it. Rows without a sort order are numbered in sheet order.
func ParseMenuRows(rows [][]interface{}) ([]domain.Menu, error) {
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	menus := []domain.Menu{}
	var currentCategory string

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}

		category := cell(row, 0)
		name := cell(row, 1)

		// category row
		if category != "" && name == "" {
			currentCategory = category
			continue
		}
		if name == "" {
			continue
		}

		if category == "" {
			category = currentCategory
		} else {
			currentCategory = category
		}
		if category == "" {
			return nil, fmt.Errorf("row %d: menu %q has no category", i+1, name)
		}

		sortOrder := len(menus) + 1
		if s := cell(row, 2); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid sort order %q", i+1, s)
			}
			sortOrder = n
		}

		menus = append(menus, domain.Menu{
			Name:      name,
			Category:  category,
			SortOrder: sortOrder,
		})
	}

	if len(menus) == 0 {
		return nil, fmt.Errorf("no menus found in spreadsheet")
	}

	return menus, nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[i]))
}
