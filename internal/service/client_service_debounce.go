// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/models"
)

const (
	DefaultDebounceWindow     = 10 * time.Second
	DefaultFastDebounceWindow = time.Second
)

// GateOption customises a debounce gate.
type GateOption func(*debounceGate)

// WithAfterFunc replaces the timer primitive, mainly for tests.
func WithAfterFunc(af AfterFunc) GateOption {
	return func(g *debounceGate) {
		g.afterFunc = af
	}
}

// TimeAfterFunc is the production [AfterFunc].
func TimeAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type pendingWindow struct {
	timer    Timer
	criteria models.Criteria
	gen      uint64
}

type debounceGate struct {
	window     time.Duration
	fastWindow time.Duration
	fastViews  map[string]struct{}

	afterFunc AfterFunc
	fire      ReconcileFunc

	mu      sync.Mutex
	pending map[string]*pendingWindow
	closed  map[string]struct{}
	gen     uint64
	stopped bool
	running sync.WaitGroup

	logger *logger.Logger
}

// NewDebounceGate builds a [DebounceGate] that hands each settled payload to
// fire. Views listed in cfg.FastViews use cfg.FastDebounceWindow, the rest
// use cfg.DebounceWindow; zero values fall back to 10s and 1s.
func NewDebounceGate(cfg config.ClientSync, fire ReconcileFunc, logger *logger.Logger, opts ...GateOption) DebounceGate {
	g := &debounceGate{
		window:     cfg.DebounceWindow,
		fastWindow: cfg.FastDebounceWindow,
		fastViews:  make(map[string]struct{}, len(cfg.FastViews)),
		afterFunc:  TimeAfterFunc,
		fire:       fire,
		pending:    make(map[string]*pendingWindow),
		closed:     make(map[string]struct{}),
		logger:     logger,
	}
	if g.window <= 0 {
		g.window = DefaultDebounceWindow
	}
	if g.fastWindow <= 0 {
		g.fastWindow = DefaultFastDebounceWindow
	}
	for _, v := range cfg.FastViews {
		g.fastViews[v] = struct{}{}
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *debounceGate) windowFor(viewName string) time.Duration {
	if _, ok := g.fastViews[viewName]; ok {
		return g.fastWindow
	}
	return g.window
}

func (g *debounceGate) Observe(viewName string, criteria models.Criteria) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return
	}
	delete(g.closed, viewName)
	if pw, ok := g.pending[viewName]; ok {
		pw.timer.Stop()
	}
	g.schedule(viewName, criteria)
}

func (g *debounceGate) Retry(viewName string, criteria models.Criteria) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return
	}
	if _, ok := g.pending[viewName]; ok {
		return
	}
	if _, ok := g.closed[viewName]; ok {
		g.logger.Debug().Str("view", viewName).Msg("view closed, dropping retry")
		return
	}
	g.logger.Debug().Str("view", viewName).Msg("scheduling retry")
	g.schedule(viewName, criteria)
}

// schedule must be called with g.mu held.
func (g *debounceGate) schedule(viewName string, criteria models.Criteria) {
	g.gen++
	pw := &pendingWindow{criteria: criteria.Clone(), gen: g.gen}
	gen := g.gen
	pw.timer = g.afterFunc(g.windowFor(viewName), func() {
		g.expire(viewName, gen)
	})
	g.pending[viewName] = pw
}

// expire runs on the timer goroutine. A window that was replaced or
// cancelled in the meantime has a different generation and is ignored.
func (g *debounceGate) expire(viewName string, gen uint64) {
	g.mu.Lock()
	pw, ok := g.pending[viewName]
	if !ok || pw.gen != gen {
		g.mu.Unlock()
		return
	}
	delete(g.pending, viewName)
	g.running.Add(1)
	g.mu.Unlock()

	defer g.running.Done()
	g.fire(viewName, pw.criteria)
}

func (g *debounceGate) Cancel(viewName string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.closed[viewName] = struct{}{}
	if pw, ok := g.pending[viewName]; ok {
		pw.timer.Stop()
		delete(g.pending, viewName)
	}
}

func (g *debounceGate) Flush(viewName string) {
	g.mu.Lock()
	pw, ok := g.pending[viewName]
	if !ok {
		g.mu.Unlock()
		return
	}
	pw.timer.Stop()
	delete(g.pending, viewName)
	g.running.Add(1)
	g.mu.Unlock()

	defer g.running.Done()
	g.fire(viewName, pw.criteria)
}

func (g *debounceGate) FlushAll() {
	g.mu.Lock()
	views := make([]string, 0, len(g.pending))
	for v := range g.pending {
		views = append(views, v)
	}
	g.mu.Unlock()

	sort.Strings(views)
	for _, v := range views {
		g.Flush(v)
	}
}

func (g *debounceGate) Pending(viewName string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.pending[viewName]
	return ok
}

func (g *debounceGate) Stop() {
	g.mu.Lock()
	g.stopped = true
	for v, pw := range g.pending {
		pw.timer.Stop()
		delete(g.pending, v)
	}
	g.mu.Unlock()

	g.running.Wait()
}
