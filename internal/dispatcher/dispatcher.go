package dispatcher

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/fuzzyfind/internal/core"
	"github.com/dshills/fuzzyfind/internal/frecency"
	"github.com/dshills/fuzzyfind/internal/matchscore"
	"github.com/dshills/fuzzyfind/internal/matchsession"
)

// Dispatcher is the engine's async command/result boundary: a single
// worker goroutine that applies commands in order and posts results the
// host polls for. The zero value is not usable; construct with New.
type Dispatcher struct {
	config   Config
	frecency *frecency.Counter
	scorer   *matchscore.Scorer
	metrics  *Metrics

	cmdMu   sync.Mutex
	cmdCond *sync.Cond
	cmdQ    []Command
	closed  bool

	resultChan chan resultMsg
	stopOnce   sync.Once

	nextID atomic.Uint64

	mu      sync.Mutex
	results map[uint64]ResultState
	maxSeen uint64
	dead    bool
}

// New creates a Dispatcher with the given configuration, backed by a
// fresh frecency counter and scorer. Call Start before issuing any
// commands.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		config:     config,
		frecency:   frecency.New(),
		resultChan: make(chan resultMsg, config.ResultBufferSize),
		results:    make(map[uint64]ResultState),
	}
	d.cmdCond = sync.NewCond(&d.cmdMu)
	d.scorer = matchscore.New(d.frecency)
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a Dispatcher with DefaultConfig.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// Start launches the worker goroutine. Start must be called exactly
// once before any command is issued.
func (d *Dispatcher) Start() {
	go d.run()
}

// Stop signals the worker to terminate once the command queue drains.
// It is safe to call Stop multiple times.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.cmdMu.Lock()
		d.closed = true
		d.cmdMu.Unlock()
		d.cmdCond.Signal()
	})
}

// enqueue appends cmd to the command queue and wakes the worker if it
// is waiting. The queue grows to hold whatever is enqueued, so this
// never blocks the calling goroutine: the host caller thread is never
// blocked on dispatcher internals.
func (d *Dispatcher) enqueue(cmd Command) {
	d.cmdMu.Lock()
	d.cmdQ = append(d.cmdQ, cmd)
	d.cmdMu.Unlock()
	d.cmdCond.Signal()
}

// Query begins a new matching session, returning its command_id.
// Issuing Query abandons whatever session is currently running; no
// result will ever be posted for that abandoned session's id.
func (d *Dispatcher) Query(query, context string, numResults int) uint64 {
	id := d.nextID.Add(1)
	d.enqueue(Command{
		Kind:       KindQuery,
		ID:         id,
		Query:      query,
		Context:    context,
		NumResults: numResults,
	})
	return id
}

// Feed appends candidate lines to the currently running session.
func (d *Dispatcher) Feed(batch []core.Line) {
	d.enqueue(Command{Kind: KindFeed, Lines: batch})
}

// Done signals end-of-input; the worker drives the current session to
// completion and posts its result, unless a newer command supersedes
// it first.
func (d *Dispatcher) Done() {
	d.enqueue(Command{Kind: KindDone})
}

// Update notifies the frecency counter of a selection. It never
// produces a result.
func (d *Dispatcher) Update(path string) {
	d.enqueue(Command{Kind: KindUpdate, Path: path})
}

// GetResult polls for the outcome of command_id id:
//
//   - StatusNone: not yet available.
//   - StatusOk: the session's final matches.
//   - StatusErr("expired command"): a later id's result already arrived,
//     so id's session was superseded from the host's point of view.
//   - StatusErr("processing thread has died"): the worker has
//     terminated.
//
// GetResult never blocks.
func (d *Dispatcher) GetResult(id uint64) ResultState {
	d.mu.Lock()
	defer d.mu.Unlock()

	if r, ok := d.results[id]; ok {
		delete(d.results, id)
		return r
	}

	d.drainResultChanLocked(id)

	if r, ok := d.results[id]; ok {
		delete(d.results, id)
		return r
	}

	if id < d.maxSeen {
		return ResultState{Status: StatusErr, Err: ErrExpired.Error()}
	}

	if d.dead {
		return ResultState{Status: StatusErr, Err: ErrWorkerDead.Error()}
	}
	return ResultState{Status: StatusNone}
}

// drainResultChanLocked pulls every currently-posted result off
// resultChan into the side table, discarding any whose id is smaller
// than the requested id. Caller must hold d.mu.
func (d *Dispatcher) drainResultChanLocked(requested uint64) {
	for {
		select {
		case msg, ok := <-d.resultChan:
			if !ok {
				d.dead = true
				return
			}
			if msg.id > d.maxSeen {
				d.maxSeen = msg.id
			}
			if msg.id < requested {
				continue
			}
			d.results[msg.id] = ResultState{Status: StatusOk, Matches: msg.matches}
		default:
			return
		}
	}
}

// Metrics returns the metrics collector, or nil if disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher's configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// dequeueBlocking waits until at least one command is queued or the
// dispatcher is stopped, then pops and returns the front of the queue.
// ok is false only once the queue is empty and Stop has been called.
func (d *Dispatcher) dequeueBlocking() (cmd Command, ok bool) {
	d.cmdMu.Lock()
	defer d.cmdMu.Unlock()
	for len(d.cmdQ) == 0 && !d.closed {
		d.cmdCond.Wait()
	}
	if len(d.cmdQ) == 0 {
		return Command{}, false
	}
	cmd, d.cmdQ = d.cmdQ[0], d.cmdQ[1:]
	return cmd, true
}

// tryDequeue pops the front of the queue if one is present, without
// waiting. It returns ok=false whether the queue is merely empty or the
// dispatcher has been stopped; callers check stopped separately.
func (d *Dispatcher) tryDequeue() (cmd Command, ok bool) {
	d.cmdMu.Lock()
	defer d.cmdMu.Unlock()
	if len(d.cmdQ) == 0 {
		return Command{}, false
	}
	cmd, d.cmdQ = d.cmdQ[0], d.cmdQ[1:]
	return cmd, true
}

// stopped reports whether Stop has been called.
func (d *Dispatcher) stopped() bool {
	d.cmdMu.Lock()
	defer d.cmdMu.Unlock()
	return d.closed
}

// run is the worker goroutine's entry point: it blocks for a command
// when idle, and applies whatever it receives.
func (d *Dispatcher) run() {
	defer close(d.resultChan)

	var session *matchsession.Session
	var currentID uint64
	var startedAt time.Time

	emit := func(matches []core.Match) {
		d.resultChan <- resultMsg{id: currentID, matches: matches}
		if d.metrics != nil {
			d.metrics.RecordQueryFinish(time.Since(startedAt))
		}
		session = nil
	}

	abandon := func() {
		if session != nil && d.metrics != nil {
			d.metrics.RecordQueryAbandoned()
		}
		session = nil
	}

	apply := func(cmd Command) {
		switch cmd.Kind {
		case KindQuery:
			abandon()
			session = matchsession.New(cmd.Query, cmd.Context, d.scorer, cmd.NumResults)
			currentID = cmd.ID
			startedAt = time.Now()
			if d.metrics != nil {
				d.metrics.RecordQueryStart()
			}
		case KindFeed:
			if session != nil {
				session.FeedLines(cmd.Lines)
			}
		case KindDone:
			// Draining is identical to Running: the loop below already
			// drives every session to Done as soon as its fed buffer is
			// exhausted, with or without an explicit Done command.
		case KindUpdate:
			d.frecency.Update(cmd.Path)
			if d.metrics != nil {
				d.metrics.RecordUpdate()
			}
		}
	}

	for {
		cmd, ok := d.dequeueBlocking()
		if !ok {
			return
		}
		apply(cmd)

		for session != nil {
			// Drain every command already waiting before scoring the next
			// chunk, not just the ones that arrive between chunks: a host
			// that issues Query then immediately Feed (the common case)
			// would otherwise race the worker into seeing an empty buffer
			// and finishing instantly. Query/Update still abandon the
			// running session; Feed/Done still just get applied.
			for {
				next, ok := d.tryDequeue()
				if !ok {
					break
				}
				switch next.Kind {
				case KindQuery, KindUpdate:
					abandon()
					apply(next)
				default:
					apply(next)
				}
			}
			if session == nil {
				break
			}
			if d.stopped() {
				abandon()
				return
			}

			progress := session.Process(d.config.ChunkSize)
			if !progress.Working {
				emit(progress.Results)
				break
			}
		}
	}
}
