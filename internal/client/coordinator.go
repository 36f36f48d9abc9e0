// Package client drives directory queries from an interactive front end:
// it debounces parameter changes, lets only the most recent call update
// the view, and keeps the loading indicator from flickering.
package client

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultDebounce = 400 * time.Millisecond

// ErrorMessage is shown in place of any transport failure.
const ErrorMessage = "Something went wrong - please refresh your page and try again."

type State int

const (
	StateIdle State = iota
	StateDebouncing
	StateFetching
	StateResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDebouncing:
		return "debouncing"
	case StateFetching:
		return "fetching"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is what the presentation layer renders.
type Snapshot struct {
	Advocates   []dto.AdvocateResponse
	TotalItems  int
	TotalPages  int
	CurrentPage int
	PageSize    int
	IsLoading   bool
	Error       string

	// State is the coordinator state when the snapshot was taken.
	State State
	// Params are the parameters of the latest change, pending or not.
	Params entity.AdvocateQuery

	version uint64
}

// Listener receives snapshots in the order they were produced. Snapshots
// overtaken by a newer one may be skipped. Listeners must not call back
// into the Coordinator synchronously.
type Listener func(Snapshot)

type Option func(*Coordinator)

func WithClock(clock Clock) Option {
	return func(c *Coordinator) { c.clock = clock }
}

func WithDebounce(d time.Duration) Option {
	return func(c *Coordinator) {
		if d >= 0 {
			c.debounce = d
		}
	}
}

func WithSpinnerGrace(grace time.Duration) Option {
	return func(c *Coordinator) { c.gate = NewSpinnerGate(grace) }
}

func WithListener(l Listener) Option {
	return func(c *Coordinator) { c.listeners = append(c.listeners, l) }
}

func WithInitialQuery(params entity.AdvocateQuery) Option {
	return func(c *Coordinator) { c.params = params.Normalize() }
}

// Coordinator owns one search session. Every parameter change invalidates
// the pending timer and the in-flight call by bumping a generation counter;
// timer fires and responses carrying an older generation are ignored.
type Coordinator struct {
	transport Transport
	log       *logrus.Logger
	clock     Clock
	debounce  time.Duration
	gate      SpinnerGate
	listeners []Listener

	mu            sync.Mutex
	state         State
	closed        bool
	params        entity.AdvocateQuery
	generation    uint64
	debounceTimer Timer
	spinnerTimer  Timer
	cancel        context.CancelFunc
	callID        string
	issuedAt      time.Time
	view          Snapshot
	version       uint64

	notifyMu  sync.Mutex
	delivered uint64
}

func NewCoordinator(transport Transport, log *logrus.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		transport: transport,
		log:       log,
		clock:     RealClock(),
		debounce:  DefaultDebounce,
		gate:      NewSpinnerGate(DefaultSpinnerGrace),
		params:    entity.DefaultAdvocateQuery(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.view = Snapshot{
		Advocates:   []dto.AdvocateResponse{},
		CurrentPage: c.params.Page,
		PageSize:    c.params.PageSize,
	}
	return c
}

// Start issues the initial load immediately, without waiting for the debounce delay.
func (c *Coordinator) Start() {
	c.issueNow("start")
}

// Refresh re-issues the current parameters immediately. It is the only way
// to retry after a failure besides changing a parameter.
func (c *Coordinator) Refresh() {
	c.issueNow("refresh")
}

func (c *Coordinator) OnSearchChange(text string) {
	c.change(func(p *entity.AdvocateQuery) {
		p.SearchTerm = text
		p.Page = entity.DefaultPage
	})
}

// OnSortChange sets the sort column; an empty field clears sorting.
func (c *Coordinator) OnSortChange(field entity.SortField, order entity.SortOrder) {
	c.change(func(p *entity.AdvocateQuery) {
		p.SortField = field
		p.SortOrder = order
		if field == entity.SortFieldNone {
			p.SortOrder = entity.SortOrderAsc
		}
		p.Page = entity.DefaultPage
	})
}

func (c *Coordinator) OnPageChange(page int) {
	c.change(func(p *entity.AdvocateQuery) {
		p.Page = page
	})
}

func (c *Coordinator) OnPageSizeChange(pageSize int) {
	c.change(func(p *entity.AdvocateQuery) {
		p.PageSize = pageSize
		p.Page = entity.DefaultPage
	})
}

// Snapshot returns the current view, with the loading flag evaluated now.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close stops the pending timer and cancels the in-flight call. Later
// changes and responses are ignored.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.supersedeLocked()
	c.state = StateIdle
}

func (c *Coordinator) change(mutate func(p *entity.AdvocateQuery)) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	next := c.params
	mutate(&next)
	next = next.Normalize()
	if next == c.params {
		c.mu.Unlock()
		return
	}

	c.params = next
	c.supersedeLocked()
	gen := c.generation
	c.state = StateDebouncing
	c.debounceTimer = c.clock.AfterFunc(c.debounce, func() { c.fire(gen) })
	snap := c.publishLocked()
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Coordinator) issueNow(reason string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.supersedeLocked()
	c.log.WithField("reason", reason).Debug("Issuing advocate query without debounce")
	snap := c.issueLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// fire runs when a debounce timer expires.
func (c *Coordinator) fire(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.generation || c.state != StateDebouncing {
		c.mu.Unlock()
		return
	}
	c.debounceTimer = nil
	snap := c.issueLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// supersedeLocked revokes the pending timer and the in-flight call.
func (c *Coordinator) supersedeLocked() {
	c.generation++
	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
		c.debounceTimer = nil
	}
	if c.spinnerTimer != nil {
		c.spinnerTimer.Stop()
		c.spinnerTimer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
		c.log.WithField("call_id", c.callID).Debug("Cancelled superseded advocate query")
	}
}

func (c *Coordinator) issueLocked() Snapshot {
	gen := c.generation
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.callID = uuid.NewString()
	c.issuedAt = c.clock.Now()
	c.state = StateFetching
	c.view.Error = ""

	if c.gate.Grace > 0 {
		c.spinnerTimer = c.clock.AfterFunc(c.gate.Grace, func() { c.revealSpinner(gen) })
	}

	params := c.params
	callID := c.callID
	c.log.WithFields(logrus.Fields{
		"call_id":    callID,
		"generation": gen,
		"page":       params.Page,
		"page_size":  params.PageSize,
		"search":     params.SearchTerm,
		"sort_by":    params.SortField,
		"sort_order": params.SortOrder,
	}).Debug("Issuing advocate query")

	go c.run(ctx, gen, callID, params)

	return c.publishLocked()
}

func (c *Coordinator) run(ctx context.Context, gen uint64, callID string, params entity.AdvocateQuery) {
	page, err := c.transport.FetchAdvocates(ctx, params)
	c.complete(gen, callID, page, err)
}

func (c *Coordinator) revealSpinner(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.generation || c.state != StateFetching {
		c.mu.Unlock()
		return
	}
	c.spinnerTimer = nil
	snap := c.publishLocked()
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Coordinator) complete(gen uint64, callID string, page *dto.AdvocatePageResponse, err error) {
	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		c.log.WithField("call_id", callID).Debug("Discarding stale advocate response")
		return
	}

	if c.spinnerTimer != nil {
		c.spinnerTimer.Stop()
		c.spinnerTimer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	switch {
	case err == nil:
		c.state = StateResolved
		c.applyPageLocked(page)
	case errors.Is(err, context.Canceled):
		c.state = StateIdle
	default:
		c.log.WithField("call_id", callID).Warnf("Failed to fetch advocates: %+v", err)
		c.state = StateFailed
		c.view.Error = ErrorMessage
	}

	snap := c.publishLocked()
	// Resolved and Failed only label the published snapshot; the session rests in Idle.
	c.state = StateIdle
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Coordinator) applyPageLocked(page *dto.AdvocatePageResponse) {
	if page == nil {
		page = &dto.AdvocatePageResponse{CurrentPage: c.params.Page, PageSize: c.params.PageSize}
	}
	advocates := page.Data
	if advocates == nil {
		advocates = []dto.AdvocateResponse{}
	}
	c.view.Advocates = advocates
	c.view.TotalItems = page.TotalItems
	c.view.TotalPages = page.TotalPages
	c.view.CurrentPage = page.CurrentPage
	c.view.PageSize = page.PageSize
	c.view.Error = ""
}

// publishLocked stamps a new version on the current view.
func (c *Coordinator) publishLocked() Snapshot {
	c.version++
	return c.viewLocked()
}

func (c *Coordinator) viewLocked() Snapshot {
	snap := c.view
	snap.Advocates = slices.Clone(c.view.Advocates)
	snap.State = c.state
	snap.Params = c.params
	snap.IsLoading = c.state == StateFetching && c.gate.Visible(c.clock.Now().Sub(c.issuedAt), false)
	snap.version = c.version
	return snap
}

func (c *Coordinator) notify(snap Snapshot) {
	if len(c.listeners) == 0 {
		return
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if snap.version <= c.delivered {
		return
	}
	c.delivered = snap.version
	for _, l := range c.listeners {
		l(snap)
	}
}
