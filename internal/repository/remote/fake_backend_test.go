package remote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/yukikurage/project-dashboard-api/internal/recordstore"
)

// fakeBackend is an in-process stand-in for the hosted record-storage API
type fakeBackend struct {
	mu     sync.Mutex
	tables map[string]map[uint64]map[string]any
	lastID uint64
	reject string
	calls  []string
}

func newFakeBackend(t *testing.T) (*fakeBackend, *recordstore.Client) {
	t.Helper()
	fb := &fakeBackend{tables: map[string]map[uint64]map[string]any{}}
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)
	return fb, recordstore.NewClient(recordstore.Config{BaseURL: srv.URL, ProjectID: "p", PublicKey: "k"})
}

func (fb *fakeBackend) put(table string, record map[string]any) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	id, _ := toID(record[fieldID])
	if id > fb.lastID {
		fb.lastID = id
	}
	if fb.tables[table] == nil {
		fb.tables[table] = map[uint64]map[string]any{}
	}
	fb.tables[table][id] = record
}

func (fb *fakeBackend) row(table string, id uint64) map[string]any {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.tables[table][id]
}

func (fb *fakeBackend) rejectWith(message string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.reject = message
}

func (fb *fakeBackend) resetCalls() {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.calls = nil
}

func (fb *fakeBackend) callCount() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.calls)
}

func (fb *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	// /v1/tables/{table}/records[/{id}]/[query]
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 4 {
		http.NotFound(w, r)
		return
	}
	table := parts[2]
	rest := parts[4:]
	fb.calls = append(fb.calls, r.Method+" "+strings.Join(append([]string{table}, rest...), "/"))
	if fb.tables[table] == nil {
		fb.tables[table] = map[uint64]map[string]any{}
	}
	rows := fb.tables[table]

	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	switch {
	case r.Method == http.MethodPost && len(rest) == 1 && rest[0] == "query":
		fb.write(w, map[string]any{"success": true, "data": fb.query(rows, body)})

	case r.Method == http.MethodPost && len(rest) == 2:
		id, _ := strconv.ParseUint(rest[0], 10, 64)
		fb.write(w, map[string]any{"success": true, "data": rows[id]})

	case r.Method == http.MethodPost && len(rest) == 0:
		fb.write(w, fb.batch(body, func(rec map[string]any) map[string]any {
			fb.lastID++
			rec[fieldID] = fb.lastID
			rows[fb.lastID] = rec
			return rec
		}))

	case r.Method == http.MethodPatch:
		fb.write(w, fb.batch(body, func(rec map[string]any) map[string]any {
			id, _ := toID(rec[fieldID])
			stored := rows[id]
			for k, v := range rec {
				stored[k] = v
			}
			return stored
		}))

	case r.Method == http.MethodDelete:
		for _, raw := range body["RecordIds"].([]any) {
			id, _ := toID(raw)
			delete(rows, id)
		}
		fb.write(w, map[string]any{"success": true, "results": []any{map[string]any{"success": true}}})

	default:
		http.Error(w, "unsupported", http.StatusMethodNotAllowed)
	}
}

func (fb *fakeBackend) batch(body map[string]any, apply func(map[string]any) map[string]any) map[string]any {
	results := []any{}
	for _, raw := range body["records"].([]any) {
		if fb.reject != "" {
			results = append(results, map[string]any{"success": false, "message": fb.reject})
			continue
		}
		results = append(results, map[string]any{"success": true, "data": apply(raw.(map[string]any))})
	}
	return map[string]any{"success": true, "results": results}
}

func (fb *fakeBackend) query(rows map[uint64]map[string]any, body map[string]any) []map[string]any {
	out := []map[string]any{}
	for _, row := range rows {
		if matches(row, body["where"]) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := toID(out[i][fieldID])
		b, _ := toID(out[j][fieldID])
		return a > b
	})
	return out
}

func matches(row map[string]any, where any) bool {
	conditions, _ := where.([]any)
	for _, raw := range conditions {
		c := raw.(map[string]any)
		want, _ := toID(c["Values"].([]any)[0])
		got, ok := toID(row[c["FieldName"].(string)])
		if !ok || got != want {
			return false
		}
	}
	return true
}

func (fb *fakeBackend) write(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
