package models

import "fmt"

// LogicalTable is the caller-facing name used by the generic view endpoint.
// It is parsed once at the edge and dispatched to typed query functions, so
// no raw table-name string ever reaches the database layer.
type LogicalTable string

const (
	TableBooks     LogicalTable = "books"
	TableHistory   LogicalTable = "history"
	TablePlan      LogicalTable = "plan"
	TableFavorites LogicalTable = "favorites"
)

// ParseLogicalTable maps the caller-supplied name onto a LogicalTable.
func ParseLogicalTable(s string) (LogicalTable, error) {
	switch LogicalTable(s) {
	case TableBooks, TableHistory, TablePlan, TableFavorites:
		return LogicalTable(s), nil
	default:
		return "", fmt.Errorf("unknown logical table %q", s)
	}
}

// DeleteTarget enumerates the tables reachable through DELETE /delete_data.
// The wire names are the localized labels the frontend sends.
type DeleteTarget int

const (
	DeleteBook DeleteTarget = iota
	DeleteHistory
	DeletePlan
)

// ParseDeleteTarget maps the localized table label onto a DeleteTarget.
func ParseDeleteTarget(s string) (DeleteTarget, error) {
	switch s {
	case "書籍":
		return DeleteBook, nil
	case "閱讀歷史":
		return DeleteHistory, nil
	case "閱讀計劃":
		return DeletePlan, nil
	default:
		return 0, fmt.Errorf("unknown table label %q", s)
	}
}
