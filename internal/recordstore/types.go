package recordstore

import "encoding/json"

// Record is one row of a hosted table keyed by field name.
// Numbers are json.Number so that ids keep their integer form.
type Record map[string]any

// Sort directions for OrderBy
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// OperatorEqualTo matches records whose field equals one of the values
const OperatorEqualTo = "EqualTo"

// FieldRef names a field to return from a query
type FieldRef struct {
	Field FieldName `json:"field"`
}

type FieldName struct {
	Name string `json:"Name"`
}

// Condition is a where predicate
type Condition struct {
	FieldName string `json:"FieldName"`
	Operator  string `json:"Operator"`
	Values    []any  `json:"Values"`
}

// Order sorts query results
type Order struct {
	FieldName string `json:"fieldName"`
	SortType  string `json:"sorttype"`
}

// FetchParams describes a query against one table
type FetchParams struct {
	Fields  []FieldRef  `json:"fields,omitempty"`
	Where   []Condition `json:"where,omitempty"`
	OrderBy []Order     `json:"orderBy,omitempty"`
}

// Fields builds the field list for a query
func Fields(names ...string) []FieldRef {
	refs := make([]FieldRef, 0, len(names))
	for _, name := range names {
		refs = append(refs, FieldRef{Field: FieldName{Name: name}})
	}
	return refs
}

// EqualTo builds an equality predicate
func EqualTo(field string, values ...any) Condition {
	return Condition{FieldName: field, Operator: OperatorEqualTo, Values: values}
}

// Result reports the outcome of one record in a batch call
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Record `json:"data,omitempty"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Results []Result        `json:"results"`
}

type recordsPayload struct {
	Records []Record `json:"records"`
}

type deletePayload struct {
	RecordIDs []uint64 `json:"RecordIds"`
}

type getPayload struct {
	Fields []FieldRef `json:"fields,omitempty"`
}
