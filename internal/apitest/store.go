package apitest

import (
	"sync"
	"time"

	"github.com/heartmarshall/agei/internal/domain"
)

type account struct {
	user         domain.User
	passwordHash []byte
}

// userData is everything one user owns.
type userData struct {
	tasks    []domain.Task
	checkIns []domain.CheckIn
	events   []domain.Event
	courses  []domain.Course
}

// memory is the server's whole state. Ids come from one counter per
// collection, shared by all users, as a database sequence would.
type memory struct {
	mu       sync.Mutex
	now      func() time.Time
	accounts map[string]*account // by email
	data     map[int64]*userData
	nextID   map[string]int64
}

func newMemory(now func() time.Time) *memory {
	return &memory{
		now:      now,
		accounts: map[string]*account{},
		data:     map[int64]*userData{},
		nextID:   map[string]int64{},
	}
}

func (m *memory) id(collection string) int64 {
	m.nextID[collection]++
	return m.nextID[collection]
}

// of returns the data of a user, creating it on first use.
// Callers hold m.mu.
func (m *memory) of(userID int64) *userData {
	d, ok := m.data[userID]
	if !ok {
		d = &userData{}
		m.data[userID] = d
	}
	return d
}

func indexOfTask(tasks []domain.Task, id int64) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfCourse(courses []domain.Course, id int64) int {
	for i := range courses {
		if courses[i].ID == id {
			return i
		}
	}
	return -1
}
