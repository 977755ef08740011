package persistence

import (
	"testing"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestSortSpec_OrderBy(t *testing.T) {
	tests := []struct {
		name     string
		filter   shared.Filter
		wantCol  string
		wantDesc bool
	}{
		{"defaults", shared.Filter{}, "display_order", false},
		{"whitelisted column", shared.Filter{OrderBy: "weight_to"}, "weight_to", false},
		{"trimmed column", shared.Filter{OrderBy: "  weight_from "}, "weight_from", false},
		{"descending any case", shared.Filter{OrderBy: "friendly_name", OrderDir: " DeSc "}, "friendly_name", true},
		{"unknown direction keeps default", shared.Filter{OrderDir: "sideways"}, "display_order", false},
		{"column names are case sensitive", shared.Filter{OrderBy: "WEIGHT_TO"}, "display_order", false},
		{"catalog column on rate records", shared.Filter{OrderBy: "name"}, "display_order", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rateRecordSort.orderBy(tt.filter)
			assert.Equal(t, tt.wantCol, got.Column.Name)
			assert.Equal(t, tt.wantDesc, got.Desc)
		})
	}
}

func TestSortSpec_RejectsInjection(t *testing.T) {
	payloads := []string{
		"weight_to; DROP TABLE shipping_rate_records;--",
		"id' OR '1'='1",
		"display_order, (SELECT value FROM shipping_settings)",
		"CASE WHEN 1=1 THEN id ELSE zip END",
		"id/**/;DELETE FROM shipping_carriers",
		"name\n; DROP TABLE shipping_warehouses",
	}

	for _, payload := range payloads {
		got := catalogSort.orderBy(shared.Filter{OrderBy: payload, OrderDir: payload})
		assert.Equal(t, "display_order", got.Column.Name, payload)
		assert.False(t, got.Desc, payload)
	}
}

func TestSortSpec_Whitelists(t *testing.T) {
	for name, spec := range map[string]sortSpec{"rate records": rateRecordSort, "catalog": catalogSort} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, spec.columns[spec.column], "default column must be sortable")
			for _, col := range []string{"id", "created_at", "updated_at"} {
				assert.True(t, spec.columns[col], col)
			}
		})
	}
}
