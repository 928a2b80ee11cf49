package checks

import (
	"fmt"
	"sort"

	"reorder/feature/items/models"

	"gorm.io/gorm"
)

// Issue kinds reported by CheckLists.
const (
	IssueDuplicate = "duplicate"
	IssueFloor     = "floor"
	IssueCrowded   = "crowded"
)

// ListIssue is a single key problem inside one owner's list.
type ListIssue struct {
	OwnerID  string  `json:"owner_id"`
	ItemID   string  `json:"item_id"`
	Kind     string  `json:"kind"`
	Position float64 `json:"position"`
}

// ListReport summarises the key audit of every list.
type ListReport struct {
	Owners   int         `json:"owners"`
	Items    int         `json:"items"`
	Issues   []ListIssue `json:"issues"`
	Affected []string    `json:"affected"`
}

// CheckLists scans every list for keys the move resolver would treat as a
// collision: equal keys, keys at or below threshold, and neighbours closer
// than threshold. Such lists renumber on their next move.
func CheckLists(db *gorm.DB, threshold float64) (*ListReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var rows []models.OrderItem
	err := db.Select("id", "user_id", "position").
		Order("user_id ASC").Order("position ASC").Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	report := &ListReport{Items: len(rows), Issues: []ListIssue{}, Affected: []string{}}
	affected := make(map[string]struct{})

	var prev *models.OrderItem
	for i := range rows {
		row := &rows[i]
		if prev == nil || prev.UserID != row.UserID {
			report.Owners++
			prev = nil
		}

		kind := ""
		switch {
		case row.Position <= threshold:
			kind = IssueFloor
		case prev != nil && row.Position == prev.Position:
			kind = IssueDuplicate
		case prev != nil && row.Position-prev.Position <= threshold:
			kind = IssueCrowded
		}
		if kind != "" {
			report.Issues = append(report.Issues, ListIssue{
				OwnerID:  row.UserID,
				ItemID:   row.ID,
				Kind:     kind,
				Position: row.Position,
			})
			affected[row.UserID] = struct{}{}
		}
		prev = row
	}

	for owner := range affected {
		report.Affected = append(report.Affected, owner)
	}
	sort.Strings(report.Affected)

	return report, nil
}
