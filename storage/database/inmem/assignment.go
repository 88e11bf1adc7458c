package inmemdb

import (
	"sort"

	"github.com/schoolos/schoolos/core/assignment"
)

type assignmentStore struct {
	db *assignmentTable
}

var _ assignment.Store = (*assignmentStore)(nil)

// NewAssignmentStore returns an assignment.Store seeded with assignment.Fixtures.
func NewAssignmentStore(db *DB) assignment.Store {
	store := &assignmentStore{db: db.assignment}
	store.Reset()
	return store
}

func (store *assignmentStore) Reset() {
	store.db.Lock()
	defer store.db.Unlock()

	fixtures := assignment.Fixtures()
	store.db.table = make(map[int]assignment.Assignment, len(fixtures))
	maxID := 0
	for _, a := range fixtures {
		store.db.table[a.ID] = a
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	store.db.nextID = maxID + 1
}

func (store *assignmentStore) All() []assignment.Assignment {
	store.db.RLock()
	defer store.db.RUnlock()

	assignments := make([]assignment.Assignment, 0, len(store.db.table))
	for _, a := range store.db.table {
		assignments = append(assignments, a)
	}
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].ID < assignments[j].ID })
	return assignments
}

func (store *assignmentStore) Get(id int) (assignment.Assignment, error) {
	store.db.RLock()
	defer store.db.RUnlock()

	if a, ok := store.db.table[id]; ok {
		return a, nil
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (store *assignmentStore) Create(a assignment.Assignment) assignment.Assignment {
	store.db.Lock()
	defer store.db.Unlock()

	a.ID = store.db.nextID
	store.db.nextID++
	store.db.table[a.ID] = a
	return a
}

func (store *assignmentStore) Update(id int, a assignment.Assignment) (assignment.Assignment, error) {
	store.db.Lock()
	defer store.db.Unlock()

	if _, ok := store.db.table[id]; !ok {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	a.ID = id
	store.db.table[id] = a
	return a, nil
}

func (store *assignmentStore) Delete(id int) bool {
	store.db.Lock()
	defer store.db.Unlock()

	if _, ok := store.db.table[id]; !ok {
		return false
	}
	delete(store.db.table, id)
	return true
}
