package remote

import (
	"context"
	"fmt"

	"github.com/yukikurage/project-dashboard-api/internal/recordstore"
	"github.com/yukikurage/project-dashboard-api/internal/repository"
)

// RecordClient is the subset of the record-storage client the repositories use
type RecordClient interface {
	FetchRecords(ctx context.Context, table string, params recordstore.FetchParams) ([]recordstore.Record, error)
	GetRecordByID(ctx context.Context, table string, id uint64, fields []recordstore.FieldRef) (recordstore.Record, error)
	CreateRecords(ctx context.Context, table string, records []recordstore.Record) ([]recordstore.Record, error)
	UpdateRecords(ctx context.Context, table string, records []recordstore.Record) ([]recordstore.Record, error)
	DeleteRecords(ctx context.Context, table string, ids []uint64) error
}

// NewRepositories creates repositories backed by the hosted record store
func NewRepositories(client RecordClient) repository.Repositories {
	return repository.Repositories{
		Projects:    NewProjectRepository(client),
		TeamMembers: NewTeamMemberRepository(client),
		Tasks:       NewTaskRepository(client),
		Assignments: NewProjectAssignmentRepository(client),
	}
}

// table maps one entity onto one hosted table
type table[T any] struct {
	client RecordClient
	name   string
	fields []recordstore.FieldRef
	decode func(recordstore.Record) (T, error)
}

func newTable[T any](client RecordClient, name string, fields []string, decode func(recordstore.Record) (T, error)) table[T] {
	return table[T]{
		client: client,
		name:   name,
		fields: recordstore.Fields(append([]string{fieldID}, fields...)...),
		decode: decode,
	}
}

func (t table[T]) list(ctx context.Context, where ...recordstore.Condition) ([]T, error) {
	records, err := t.client.FetchRecords(ctx, t.name, recordstore.FetchParams{
		Fields:  t.fields,
		Where:   where,
		OrderBy: []recordstore.Order{{FieldName: fieldID, SortType: recordstore.SortDesc}},
	})
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(records))
	for _, r := range records {
		item, err := t.decode(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (t table[T]) first(ctx context.Context, where ...recordstore.Condition) (*T, error) {
	items, err := t.list(ctx, where...)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, repository.ErrNotFound
	}
	return &items[0], nil
}

func (t table[T]) raw(ctx context.Context, id uint64) (recordstore.Record, error) {
	record, err := t.client.GetRecordByID(ctx, t.name, id, t.fields)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, repository.ErrNotFound
	}
	return record, nil
}

func (t table[T]) find(ctx context.Context, id uint64) (*T, error) {
	record, err := t.raw(ctx, id)
	if err != nil {
		return nil, err
	}
	item, err := t.decode(record)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (t table[T]) create(ctx context.Context, record recordstore.Record) (T, error) {
	var zero T
	created, err := t.client.CreateRecords(ctx, t.name, []recordstore.Record{record})
	if err != nil {
		return zero, err
	}
	if len(created) == 0 || created[0] == nil {
		return zero, fmt.Errorf("%s: create returned no record", t.name)
	}
	return t.decode(merge(record, created[0]))
}

// update resolves the id first so that a missing record is ErrNotFound,
// then sends only the changed fields. An empty change set makes no write.
func (t table[T]) update(ctx context.Context, id uint64, changes recordstore.Record) (*T, error) {
	existing, err := t.raw(ctx, id)
	if err != nil {
		return nil, err
	}

	stored := existing
	if len(changes) > 0 {
		changes[fieldID] = id
		updated, err := t.client.UpdateRecords(ctx, t.name, []recordstore.Record{changes})
		if err != nil {
			return nil, err
		}
		stored = merge(existing, changes)
		if len(updated) > 0 {
			stored = merge(stored, updated[0])
		}
	}

	item, err := t.decode(stored)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (t table[T]) remove(ctx context.Context, id uint64) error {
	if _, err := t.raw(ctx, id); err != nil {
		return err
	}
	return t.client.DeleteRecords(ctx, t.name, []uint64{id})
}
