package futures

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// taskArena is the free-list-less, append-only backing store for a Task's
// TaskData values. Entries live for the Task's whole lifetime (spec §4.3:
// "dropping a Task drops all its task-local values"), so there is no
// removal path - only insert and borrow. Grounded on the shape of the
// teacher's eventloop/registry.go (a map-keyed store guarding concurrent
// access), simplified to a dense slice since TaskData keys never need to be
// individually freed early.
type taskArena struct {
	mu       sync.Mutex
	values   []any // each entry is a *T for the TaskData[T] that owns it
	borrowed []bool
}

func (a *taskArena) insert(p any) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values = append(a.values, p)
	a.borrowed = append(a.borrowed, false)
	return len(a.values) - 1
}

// TaskData is an opaque, non-forgeable handle to a value stored in a
// Task's local arena. It is non-forgeable because the only way to produce
// one is [Insert], and the index it carries is meaningless against any
// arena but the one that minted it - [With] checks this and panics on
// mismatch.
type TaskData[T any] struct {
	arena *taskArena
	index int
}

// Insert appends v to t's task-local arena and returns an opaque key for
// later exclusive access via [With]. O(1) amortized (spec §4.3).
func Insert[T any](t *Task, v T) TaskData[T] {
	p := new(T)
	*p = v
	idx := t.arena.insert(p)
	return TaskData[T]{arena: &t.arena, index: idx}
}

// With takes exclusive, temporary access to the value named by key for the
// duration of f, returning f's result. Reentrant access to the same key -
// calling With again, for the same key, from within f - is a design error;
// in keeping with spec §4.3 and §7 point 3, it is logged and panics rather
// than silently corrupting state.
func With[T, R any](t *Task, key TaskData[T], f func(*T) R) R {
	if key.arena != &t.arena {
		panic("futures: TaskData key does not belong to this Task")
	}

	a := key.arena
	a.mu.Lock()
	if a.borrowed[key.index] {
		a.mu.Unlock()
		logReentrantTaskData(key.index)
		panic("futures: reentrant TaskData access")
	}
	a.borrowed[key.index] = true
	p := a.values[key.index].(*T)
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.borrowed[key.index] = false
		a.mu.Unlock()
	}()

	return f(p)
}

// Task is the per-computation execution context threaded through every
// Poll call (spec §3, §4.3). It owns a wake handle
// and a ready-event token set accumulated between poll cycles, plus the
// heterogeneous task-local arena backing [TaskData].
//
// A Task must only ever be polled by one goroutine at a time; it may
// migrate between goroutines between polls (spec §5).
type Task struct {
	id    string
	arena taskArena

	mu        sync.Mutex
	readyToks map[uint64]struct{}
	awake     bool
	waker     func()
	nextTok   atomic.Uint64

	handle *TaskHandle
}

// NewTask creates a fresh, empty Task. Most callers only need this through
// an [executor.Run] call; constructing one directly is mainly useful for
// unit tests that poll a future without a full executor.
func NewTask(opts ...TaskOption) *Task {
	cfg := resolveTaskOptions(opts)
	t := &Task{
		id:        cfg.id,
		readyToks: make(map[uint64]struct{}),
	}
	if t.id == "" {
		t.id = uuid.NewString()
	}
	t.handle = &TaskHandle{task: t}
	return t
}

// ID returns the Task's stable identifier, suitable for inclusion in log
// entries (see [SetLogger]).
func (t *Task) ID() string { return t.id }

// Handle returns the Task's [TaskHandle], stable across the Task's
// lifetime and safe to clone and share with every descendant future.
func (t *Task) Handle() *TaskHandle { return t.handle }

// NewToken mints a fresh event token for this Task. [Promise] and the
// stream channel mint one per callback registration and pass it to
// [TaskHandle.Notify]; the join/select/select_all combinators mint none and
// instead re-poll every pending branch on each wakeup.
func (t *Task) NewToken() uint64 {
	return t.nextTok.Add(1)
}

// SetWaker installs the function an executor uses to be woken when this
// Task becomes ready. Only the executor driving a Task's root future
// should call this.
func (t *Task) SetWaker(wake func()) {
	t.mu.Lock()
	t.waker = wake
	t.mu.Unlock()
}

// ready records token as having fired and wakes the executor at most once
// per dormant period: concurrent or repeated notifications between two
// drains of Events coalesce into a single wake call (spec §4.3).
func (t *Task) ready(token uint64) {
	t.mu.Lock()
	t.readyLocked(token)
	already := t.awake
	t.awake = true
	wake := t.waker
	t.mu.Unlock()

	if !already && wake != nil {
		wake()
	}
}

func (t *Task) readyLocked(token uint64) {
	if t.readyToks == nil {
		t.readyToks = make(map[uint64]struct{})
	}
	t.readyToks[token] = struct{}{}
}

// Events drains the ready-event token set accumulated since the last call,
// resetting the dormant-period coalescing flag so the next notification
// wakes the executor again.
func (t *Task) Events() []uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.readyToks) == 0 {
		t.awake = false
		return nil
	}
	out := make([]uint64, 0, len(t.readyToks))
	for tok := range t.readyToks {
		out = append(out, tok)
	}
	t.readyToks = make(map[uint64]struct{})
	t.awake = false
	return out
}

// TaskHandle is a cheap, shareable, cloneable notifier tied to one Task
// (spec §4.3). Every descendant future schedules through the same
// TaskHandle as its ancestors; there is no per-combinator notifier.
type TaskHandle struct {
	task *Task
}

// Notify atomically records token in the task's ready-event set and wakes
// the executor at most once per dormant period.
func (h *TaskHandle) Notify(token uint64) {
	h.task.ready(token)
}

// Clone returns a handle to the same underlying Task. Because TaskHandle is
// already a thin, shareable pointer, Clone is just identity - it exists so
// call sites can express intent ("I'm retaining a copy of this handle")
// without reaching past the API.
func (h *TaskHandle) Clone() *TaskHandle { return h }

// TaskOption configures [NewTask]. Grounded on eventloop/options.go's
// LoopOption pattern.
type TaskOption interface {
	applyTask(*taskOptions)
}

type taskOptions struct {
	id string
}

type taskOptionFunc func(*taskOptions)

func (f taskOptionFunc) applyTask(o *taskOptions) { f(o) }

// WithTaskID overrides the auto-generated UUID identifier a Task is given,
// primarily useful in tests that want deterministic log output.
func WithTaskID(id string) TaskOption {
	return taskOptionFunc(func(o *taskOptions) { o.id = id })
}

func resolveTaskOptions(opts []TaskOption) taskOptions {
	var cfg taskOptions
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.applyTask(&cfg)
	}
	return cfg
}
