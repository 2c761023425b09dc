// Package store holds the canonical entity collections. It is the single
// source of truth for the portal: the session, messaging and academic
// modules receive the same Store at construction time and go through it
// for every read and targeted replace.
package store

import (
	"github.com/google/uuid"

	"github.com/noah-isme/edu-portal/internal/models"
)

// Store aggregates the top-level entity collections.
type Store struct {
	Users         *Collection[models.User]
	Classrooms    *Collection[models.Classroom]
	Assignments   *Collection[models.Assignment]
	Grades        *Collection[models.Grade]
	Announcements *Collection[models.Announcement]
	Chats         *Collection[models.Chat]
}

// New builds an empty store.
func New() *Store {
	return &Store{
		Users:         NewClonedCollection(func(u models.User) string { return u.ID }, models.User.Clone),
		Classrooms:    NewClonedCollection(func(c models.Classroom) string { return c.ID }, models.Classroom.Clone),
		Assignments:   NewClonedCollection(func(a models.Assignment) string { return a.ID }, models.Assignment.Clone),
		Grades:        NewCollection(func(g models.Grade) string { return g.Key() }),
		Announcements: NewCollection(func(a models.Announcement) string { return a.ID }),
		Chats:         NewClonedCollection(func(c models.Chat) string { return c.ID }, models.Chat.Clone),
	}
}

// NewID returns a fresh opaque identifier. IDs are never reused or mutated.
func (s *Store) NewID() string {
	return uuid.NewString()
}
