// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"

	"github.com/MKhiriev/go-filter-keeper/models"
)

type subscription struct {
	id int
	fn CriteriaChangeFunc
}

// localCriteriaStore is the in-memory [LocalCriteriaStore]. Values are
// cloned on the way in and out, so callers never share maps with it.
type localCriteriaStore struct {
	mu      sync.RWMutex
	values  map[string]models.Criteria
	subs    map[string][]subscription
	nextSub int
}

// NewLocalCriteriaStore returns an empty in-memory [LocalCriteriaStore].
func NewLocalCriteriaStore() LocalCriteriaStore {
	return &localCriteriaStore{
		values: make(map[string]models.Criteria),
		subs:   make(map[string][]subscription),
	}
}

func (s *localCriteriaStore) Get(viewName string) models.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.values[viewName].Clone()
}

func (s *localCriteriaStore) Set(viewName string, criteria models.Criteria) {
	s.mu.Lock()
	if s.values[viewName].Equal(criteria) {
		s.mu.Unlock()
		return
	}
	s.store(viewName, criteria)
	subs := append([]subscription(nil), s.subs[viewName]...)
	s.mu.Unlock()

	// callbacks run outside the lock so they may call back into the store
	for _, sub := range subs {
		sub.fn(viewName, criteria.Clone())
	}
}

func (s *localCriteriaStore) Seed(viewName string, criteria models.Criteria) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store(viewName, criteria)
}

func (s *localCriteriaStore) Subscribe(viewName string, fn CriteriaChangeFunc) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs[viewName] = append(s.subs[viewName], subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			subs := s.subs[viewName]
			for i, sub := range subs {
				if sub.id == id {
					s.subs[viewName] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
			if len(s.subs[viewName]) == 0 {
				delete(s.subs, viewName)
			}
		})
	}
}

// store must be called with s.mu held for writing.
func (s *localCriteriaStore) store(viewName string, criteria models.Criteria) {
	if criteria.IsEmpty() {
		delete(s.values, viewName)
		return
	}
	s.values[viewName] = criteria.Clone()
}
