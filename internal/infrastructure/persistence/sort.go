package persistence

import (
	"strings"

	"github.com/erp/shipping/internal/domain/shared"
	"gorm.io/gorm/clause"
)

// sortSpec whitelists the columns a listing may be ordered by. Anything
// else in Filter.OrderBy is replaced by the default column, so the value
// never reaches SQL unchecked.
type sortSpec struct {
	columns    map[string]bool
	column     string
	descending bool
}

var (
	rateRecordSort = sortSpec{
		columns: columnSet("id", "created_at", "updated_at", "display_order",
			"weight_from", "weight_to", "order_subtotal_from", "friendly_name",
			"vendor_id", "carrier_id"),
		column: "display_order",
	}
	catalogSort = sortSpec{
		columns: columnSet("id", "created_at", "updated_at", "name", "display_order"),
		column:  "display_order",
	}
)

func columnSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// orderBy resolves the filter's sort request. Column names are matched
// exactly after trimming; direction accepts asc/desc in any case.
func (s sortSpec) orderBy(filter shared.Filter) clause.OrderByColumn {
	column := s.column
	if name := strings.TrimSpace(filter.OrderBy); s.columns[name] {
		column = name
	}
	desc := s.descending
	switch strings.ToLower(strings.TrimSpace(filter.OrderDir)) {
	case "asc":
		desc = false
	case "desc":
		desc = true
	}
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}
}
