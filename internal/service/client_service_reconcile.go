// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-filter-keeper/internal/adapter"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/store"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// syncState is the controller's bookkeeping for one view.
type syncState struct {
	remoteID   string
	lastSynced models.Criteria
	pending    models.PendingOperation
	loaded     bool
	loading    bool

	// desired is the latest intent that arrived while a call or the
	// initial load was running.
	desired    models.Criteria
	hasDesired bool

	// seq is bumped by Reset; a call started under an older seq must not
	// apply its result when it returns.
	seq uint64

	lastError    string
	lastSyncedAt *time.Time
}

type syncOp int

const (
	opNone syncOp = iota
	opCreate
	opUpdate
	opDelete
)

func (o syncOp) String() string {
	switch o {
	case opCreate:
		return "create"
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	default:
		return "none"
	}
}

func (o syncOp) pending() models.PendingOperation {
	if o == opDelete {
		return models.PendingDelete
	}
	return models.PendingCreateOrUpdate
}

type criteriaSyncController struct {
	adapter    adapter.CriteriaAdapter
	localStore store.LocalCriteriaStore
	retry      ReconcileFunc
	now        func() time.Time

	mu      sync.Mutex
	states  map[string]*syncState
	changed chan struct{}
	subs    map[int]func(models.SyncStatus)
	nextSub int
	outbox  []models.SyncStatus

	logger *logger.Logger
}

// NewCriteriaSyncController builds the controller. retry is called with the
// failed payload when a call fails and nothing newer is waiting; pass the
// debounce gate's Retry so the cadence equals the debounce window. A nil
// retry disables automatic retries.
func NewCriteriaSyncController(criteriaAdapter adapter.CriteriaAdapter, localStore store.LocalCriteriaStore, retry ReconcileFunc, logger *logger.Logger) CriteriaSyncController {
	return &criteriaSyncController{
		adapter:    criteriaAdapter,
		localStore: localStore,
		retry:      retry,
		now:        time.Now,
		states:     make(map[string]*syncState),
		changed:    make(chan struct{}),
		subs:       make(map[int]func(models.SyncStatus)),
		logger:     logger,
	}
}

// state returns the view's state, creating it on first use.
// c.mu must be held.
func (c *criteriaSyncController) state(viewName string) *syncState {
	st, ok := c.states[viewName]
	if !ok {
		st = &syncState{}
		c.states[viewName] = st
	}
	return st
}

func (c *criteriaSyncController) Load(ctx context.Context, viewName string) {
	log := c.logger.WithView(viewName)

	c.mu.Lock()
	st := c.state(viewName)
	if st.loaded || st.loading {
		c.unlock()
		return
	}
	st.loading = true
	seq := st.seq
	c.notify(viewName, st)
	before := c.localStore.Get(viewName)
	c.unlock()

	rec, err := c.adapter.FetchByView(ctx, viewName)

	c.mu.Lock()
	st = c.state(viewName)
	for st.seq != seq {
		// the fetch belonged to the previous session, run it again
		log.Debug().Msg("view was reset during initial load, fetching again")
		seq = st.seq
		before = c.localStore.Get(viewName)
		c.unlock()

		rec, err = c.adapter.FetchByView(ctx, viewName)

		c.mu.Lock()
		st = c.state(viewName)
	}
	st.loading = false
	st.loaded = true

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		log.Debug().Msg("no remote criteria for view")
	case err != nil:
		st.lastError = describeSyncError(err)
		log.Warn().Err(err).Msg("initial load failed, starting empty")
	default:
		st.remoteID = rec.ID
		st.lastSynced = rec.Criteria.Clone()
		st.lastError = ""

		// an edit made while the fetch was running wins over the remote value
		edited := st.hasDesired || !c.localStore.Get(viewName).Equal(before)
		if edited {
			log.Info().Str("id", rec.ID).Msg("local edit during initial load kept over remote criteria")
		} else {
			c.localStore.Seed(viewName, rec.Criteria)
			log.Info().Str("id", rec.ID).Msg("view seeded from remote criteria")
		}
	}
	c.notify(viewName, st)

	if st.hasDesired {
		desired := st.desired
		st.desired, st.hasDesired = nil, false
		c.reconcileLocked(ctx, viewName, desired)
	}
	c.unlock()
}

func (c *criteriaSyncController) Reconcile(ctx context.Context, viewName string, desired models.Criteria) {
	c.mu.Lock()
	st := c.state(viewName)
	if st.pending != models.PendingNone || st.loading {
		st.desired = desired.Clone()
		st.hasDesired = true
		c.notify(viewName, st)
		c.logger.Debug().
			Str("view", viewName).
			Stringer("pending", st.pending).
			Bool("loading", st.loading).
			Msg("call in progress, remembering desired criteria")
		c.unlock()
		return
	}

	c.reconcileLocked(ctx, viewName, desired)
	c.unlock()
}

// reconcileLocked runs calls until the view's state matches desired and no
// newer intent is waiting. c.mu must be held on entry and is held on return;
// it is released around every network call.
func (c *criteriaSyncController) reconcileLocked(ctx context.Context, viewName string, desired models.Criteria) {
	log := c.logger.WithView(viewName)
	recreated := false

	for {
		st := c.state(viewName)
		op := decide(st, desired)
		if op == opNone {
			if desired.IsEmpty() {
				st.lastSynced = nil
			}
			st.lastError = ""
			log.Debug().Msg("remote criteria already up to date")
		} else {
			seq := st.seq
			id := st.remoteID
			st.pending = op.pending()
			c.notify(viewName, st)

			c.unlock()
			rec, err := c.call(ctx, op, viewName, id, desired)
			c.mu.Lock()

			st = c.state(viewName)
			st.pending = models.PendingNone
			if st.seq != seq {
				log.Debug().Stringer("op", op).Msg("view was reset during call, dropping response")
				recreated = false
				if st.hasDesired {
					desired = st.desired
					st.desired, st.hasDesired = nil, false
					c.notify(viewName, st)
					continue
				}
				c.notify(viewName, st)
				return
			}

			if retryCreate := c.apply(viewName, st, op, desired, rec, err); retryCreate && !recreated {
				recreated = true
				c.notify(viewName, st)
				continue
			}
		}

		if st.hasDesired {
			desired = st.desired
			st.desired, st.hasDesired = nil, false
			c.notify(viewName, st)
			continue
		}

		c.notify(viewName, st)
		return
	}
}

// decide picks the call that moves st towards desired.
func decide(st *syncState, desired models.Criteria) syncOp {
	hasID := st.remoteID != ""

	if desired.IsEmpty() {
		if hasID {
			return opDelete
		}
		return opNone
	}

	if hasID && desired.Equal(st.lastSynced) {
		return opNone
	}
	if hasID && !st.lastSynced.IsEmpty() {
		return opUpdate
	}
	return opCreate
}

func (c *criteriaSyncController) call(ctx context.Context, op syncOp, viewName, id string, desired models.Criteria) (models.CriteriaRecord, error) {
	rec := models.CriteriaRecord{ViewName: viewName, Criteria: desired}

	c.logger.Debug().
		Str("view", viewName).
		Stringer("op", op).
		Str("id", id).
		Msg("calling remote store")

	switch op {
	case opCreate:
		return c.adapter.Create(ctx, rec)
	case opUpdate:
		return c.adapter.Update(ctx, id, rec)
	case opDelete:
		return models.CriteriaRecord{}, c.adapter.Delete(ctx, id)
	default:
		return models.CriteriaRecord{}, nil
	}
}

// apply records the outcome of a call. It returns true when an update found
// the record gone and a create should follow right away.
func (c *criteriaSyncController) apply(viewName string, st *syncState, op syncOp, desired models.Criteria, rec models.CriteriaRecord, err error) bool {
	log := c.logger.WithView(viewName)

	if errors.Is(err, adapter.ErrNotFound) {
		switch op {
		case opDelete:
			err = nil
		case opUpdate:
			log.Warn().Str("id", st.remoteID).Msg("remote record disappeared, creating a new one")
			st.remoteID = ""
			st.lastSynced = nil
			return true
		}
	}

	if err != nil {
		st.lastError = describeSyncError(err)
		log.Warn().Err(err).Stringer("op", op).Msg("remote call failed")
		if !st.hasDesired && c.retry != nil {
			c.retry(viewName, desired)
		}
		return false
	}

	switch op {
	case opCreate, opUpdate:
		if rec.ID != "" {
			st.remoteID = rec.ID
		}
		st.lastSynced = desired.Clone()
	case opDelete:
		st.remoteID = ""
		st.lastSynced = nil
	}

	now := c.now()
	st.lastSyncedAt = &now
	st.lastError = ""
	log.Debug().Stringer("op", op).Str("id", st.remoteID).Msg("remote call succeeded")

	return false
}

func (c *criteriaSyncController) Status(viewName string) models.SyncStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.states[viewName]
	if !ok {
		return models.SyncStatus{ViewName: viewName}
	}
	return snapshot(viewName, st)
}

func (c *criteriaSyncController) Statuses() []models.SyncStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.SyncStatus, 0, len(c.states))
	for v, st := range c.states {
		out = append(out, snapshot(v, st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ViewName < out[j].ViewName })
	return out
}

func (c *criteriaSyncController) Subscribe(fn func(models.SyncStatus)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSub++
	id := c.nextSub
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *criteriaSyncController) WaitIdle(ctx context.Context, viewName string) error {
	for {
		c.mu.Lock()
		st, ok := c.states[viewName]
		idle := !ok || (st.pending == models.PendingNone && !st.hasDesired && !st.loading)
		changed := c.changed
		c.mu.Unlock()

		if idle {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}

func (c *criteriaSyncController) Reset(viewName string) {
	c.mu.Lock()
	if st, ok := c.states[viewName]; ok {
		st.reset()
		c.notify(viewName, st)
	}
	c.unlock()
}

func (c *criteriaSyncController) ResetAll() {
	c.mu.Lock()
	for v, st := range c.states {
		st.reset()
		c.notify(v, st)
	}
	c.unlock()
}

// reset forgets everything known about the remote record. A call or load
// still running keeps its marker, so new intent waits for it to return.
func (st *syncState) reset() {
	*st = syncState{
		seq:     st.seq + 1,
		pending: st.pending,
		loading: st.loading,
	}
}

// notify queues a snapshot for subscribers and wakes WaitIdle callers.
// c.mu must be held.
func (c *criteriaSyncController) notify(viewName string, st *syncState) {
	close(c.changed)
	c.changed = make(chan struct{})

	if len(c.subs) > 0 {
		c.outbox = append(c.outbox, snapshot(viewName, st))
	}
}

// unlock releases c.mu and then delivers queued snapshots, so subscribers
// never run under the lock.
func (c *criteriaSyncController) unlock() {
	out := c.outbox
	c.outbox = nil
	var subs []func(models.SyncStatus)
	if len(out) > 0 {
		ids := make([]int, 0, len(c.subs))
		for id := range c.subs {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			subs = append(subs, c.subs[id])
		}
	}
	c.mu.Unlock()

	for _, s := range out {
		for _, fn := range subs {
			fn(s)
		}
	}
}

func snapshot(viewName string, st *syncState) models.SyncStatus {
	s := models.SyncStatus{
		ViewName:            viewName,
		LastKnownRemoteID:   st.remoteID,
		LastSyncedCriteria:  st.lastSynced.Clone(),
		PendingOperation:    st.pending,
		HasLoadedFromRemote: st.loaded,
		Dirty:               st.hasDesired,
		LastError:           st.lastError,
	}
	if st.lastSyncedAt != nil {
		t := *st.lastSyncedAt
		s.LastSyncedAt = &t
	}
	return s
}
