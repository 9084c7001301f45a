package remote

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/yukikurage/project-dashboard-api/internal/recordstore"
	"github.com/yukikurage/project-dashboard-api/internal/utils"
)

const fieldID = "Id"

// toID coerces a lookup value to an id. The store returns lookups as a number,
// a numeric string, or an object carrying an "Id".
func toID(v any) (uint64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case json.Number:
		return parseID(x.String())
	case string:
		return parseID(x)
	case float64:
		if x < 0 || x != math.Trunc(x) {
			return 0, false
		}
		return uint64(x), true
	case int:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int64:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case uint64:
		return x, true
	case map[string]any:
		return toID(x[fieldID])
	case recordstore.Record:
		return toID(x[fieldID])
	}
	return 0, false
}

func parseID(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if id, err := strconv.ParseUint(s, 10, 64); err == nil {
		return id, true
	}
	// ids written as 12.0
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	return uint64(f), true
}

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case map[string]any:
		return toString(x["Name"])
	}
	return fmt.Sprint(v)
}

func toInt(v any) int {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n)
		}
		if f, err := x.Float64(); err == nil {
			return int(f)
		}
	case float64:
		return int(x)
	case int:
		return x
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n
		}
	}
	return 0
}

func toTime(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func optionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func optionalID(id *uint64) any {
	if id == nil {
		return nil
	}
	return *id
}

// recordID reads the mandatory "Id" of a record
func recordID(table string, r recordstore.Record) (uint64, error) {
	id, ok := toID(r[fieldID])
	if !ok {
		return 0, fmt.Errorf("%s: record without a valid Id: %v", table, r[fieldID])
	}
	return id, nil
}

// merge overlays the given records in order, later keys winning
func merge(records ...recordstore.Record) recordstore.Record {
	out := recordstore.Record{}
	for _, r := range records {
		for k, v := range r {
			out[k] = v
		}
	}
	return out
}
