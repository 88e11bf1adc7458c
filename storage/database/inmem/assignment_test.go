package inmemdb

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolos/schoolos/core/assignment"
	"github.com/schoolos/schoolos/tests"
)

func setup(t *testing.T) assignment.Store {
	db, err := Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return NewAssignmentStore(db)
}

func project() assignment.Assignment {
	return testutil.Project(0)
}

func ids(assignments []assignment.Assignment) []int {
	r := make([]int, 0, len(assignments))
	for _, a := range assignments {
		r = append(r, a.ID)
	}
	return r
}

func Test_assignmentStore_Reset(t *testing.T) {
	store := setup(t)
	assert.Equal(t, []int{1, 2}, ids(store.All()))

	store.Create(project())
	store.Delete(1)
	store.Reset()
	store.Reset()

	assert.Equal(t, assignment.Fixtures(), store.All())
	created := store.Create(project())
	assert.Equal(t, 3, created.ID, "next id must be back to 3")
}

func Test_assignmentStore_All(t *testing.T) {
	store := setup(t)
	testutil.CreateAssignments(t, store, 5)
	store.Delete(4)

	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, ids(store.All()))

	for _, a := range store.All() {
		store.Delete(a.ID)
	}
	all := store.All()
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func Test_assignmentStore_CreateGet(t *testing.T) {
	store := setup(t)

	payload := project()
	payload.ID = 42 // ignored
	created := store.Create(payload)
	require.Equal(t, 3, created.ID)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, testutil.Project(3), got)
	assert.Equal(t, created, got)

	_, err = store.Get(42)
	assert.Equal(t, assignment.ErrNotFound, err)
}

func Test_assignmentStore_idMonotonicity(t *testing.T) {
	store := setup(t)

	last := 2
	for i := 0; i < 10; i++ {
		created := store.Create(project())
		assert.Greater(t, created.ID, last)
		last = created.ID
		if i%2 == 0 {
			assert.True(t, store.Delete(created.ID))
		}
	}
	// deleting the highest id must not free it
	assert.True(t, store.Delete(last))
	created := store.Create(project())
	assert.Equal(t, last+1, created.ID)
}

func Test_assignmentStore_copyIsolation(t *testing.T) {
	store := setup(t)

	all := store.All()
	all[0].Title = "Changed"
	got, err := store.Get(1)
	require.NoError(t, err)
	got.PointsPossible = 1000

	again, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, assignment.Fixtures()[0], again)

	a := project()
	created := store.Create(a)
	a.Title = "Changed"
	created.Category = "Changed"
	again, err = store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Project", again.Title)
	assert.Equal(t, "Project", again.Category)
}

func Test_assignmentStore_Update(t *testing.T) {
	store := setup(t)

	_, err := store.Update(42, project())
	assert.Equal(t, assignment.ErrNotFound, err)
	_, err = store.Get(42)
	assert.Equal(t, assignment.ErrNotFound, err, "update must not create")

	payload := project()
	payload.ID = 99 // overwritten by the path id
	payload.Title = "Updated Project"
	updated, err := store.Update(2, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ID)

	got, err := store.Get(2)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, "Updated Project", got.Title)
	assert.Equal(t, "", got.Description, "update is a full replace")

	_, err = store.Get(99)
	assert.Equal(t, assignment.ErrNotFound, err)
}

func Test_assignmentStore_partialUpdateMerge(t *testing.T) {
	store := setup(t)
	before, err := store.Get(1)
	require.NoError(t, err)

	points := 55
	payload := assignment.Payload{PointsPossible: &points}
	merged, err := payload.Apply(before)
	require.NoError(t, err)
	_, err = store.Update(before.ID, merged)
	require.NoError(t, err)

	after, err := store.Get(1)
	require.NoError(t, err)
	want := before
	want.PointsPossible = 55
	assert.Equal(t, want, after)
}

func Test_assignmentStore_Delete(t *testing.T) {
	store := setup(t)

	assert.False(t, store.Delete(42))
	assert.False(t, store.Delete(42))

	assert.True(t, store.Delete(1))
	assert.False(t, store.Delete(1))
	_, err := store.Get(1)
	assert.Equal(t, assignment.ErrNotFound, err)
	assert.Equal(t, []int{2}, ids(store.All()))
}

func Test_assignmentStore_concurrentCreate(t *testing.T) {
	store := setup(t)

	const n = 50
	var wg sync.WaitGroup
	created := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created <- store.Create(project()).ID
		}()
	}
	wg.Wait()
	close(created)

	seen := make(map[int]bool, n)
	for id := range created {
		assert.False(t, seen[id], "id %d issued twice", id)
		assert.Greater(t, id, 2)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Len(t, store.All(), n+2)
}

func TestStoresAreIndependent(t *testing.T) {
	s1, s2 := setup(t), setup(t)
	s1.Create(project())
	s1.Create(project())

	assert.Equal(t, 3, s2.Create(project()).ID)
}
