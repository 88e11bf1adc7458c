package inmemdb

import (
	"sync"

	"github.com/schoolos/schoolos/core/assignment"
)

type (
	DB struct {
		assignment *assignmentTable
	}

	assignmentTable struct {
		sync.RWMutex
		table  map[int]assignment.Assignment
		nextID int
	}
)

func Open() (*DB, error) {
	db := &DB{
		assignment: &assignmentTable{table: make(map[int]assignment.Assignment), nextID: 1},
	}
	return db, nil
}
