package dto

import "bank-console/internal/models"

// TablePage is one rendered page of a console table
type TablePage struct {
	Entity        string           `json:"entity"`
	State         string           `json:"state"`
	Columns       []string         `json:"columns"`
	Rows          []*models.Record `json:"rows"`
	Query         string           `json:"query"`
	Page          int              `json:"page"`
	PageCount     int              `json:"pageCount"`
	PageSize      int              `json:"pageSize"`
	Total         int              `json:"total"`
	FilteredTotal int              `json:"filteredTotal"`
	RangeStart    int              `json:"rangeStart"`
	RangeEnd      int              `json:"rangeEnd"`
}

// TableQuery carries the optional query and page of a table view request
type TableQuery struct {
	Query *string `query:"q"`
	Page  int     `query:"page" validate:"omitempty,min=1"`
}

// FetchRequest asks the console to (re)load an entity collection.
// Username filters the admin repayments list.
type FetchRequest struct {
	Username string `json:"username" validate:"omitempty,max=100"`
}

// ConsoleResponse wraps every console payload with the current alert
type ConsoleResponse struct {
	View  string        `json:"view"`
	Alert *models.Alert `json:"alert,omitempty"`
	Data  interface{}   `json:"data,omitempty"`
}
