package schedule

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered to the program when a Loop timer expires.
type FiredMsg struct {
	ID uint64
}

// RunMsg carries a function posted with Loop.Post.
type RunMsg struct {
	Fn func()
}

// Loop is a Runtime backed by wall-clock timers whose expirations are routed
// through a bubbletea program. The model must hand FiredMsg and RunMsg back
// to Handle.
type Loop struct {
	mu      sync.Mutex
	next    uint64
	pending map[uint64]*loopTimer
	send    func(tea.Msg)
	backlog []tea.Msg
}

type loopTimer struct {
	fn    func()
	timer *time.Timer
}

// NewLoop creates a loop. Messages produced before SetSender is called are
// buffered and flushed once a sender is attached.
func NewLoop() *Loop {
	return &Loop{pending: make(map[uint64]*loopTimer)}
}

// SetSender attaches the program's Send function.
func (l *Loop) SetSender(send func(tea.Msg)) {
	l.mu.Lock()
	l.send = send
	backlog := l.backlog
	l.backlog = nil
	l.mu.Unlock()

	for _, msg := range backlog {
		send(msg)
	}
}

// Now returns the wall-clock time.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn to run on the loop after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	l.mu.Lock()
	l.next++
	id := l.next
	t := &loopTimer{fn: fn}
	l.pending[id] = t
	t.timer = time.AfterFunc(d, func() { l.deliver(FiredMsg{ID: id}) })
	l.mu.Unlock()

	return loopHandle{loop: l, id: id}
}

// Post runs fn on the loop. Safe to call from any goroutine.
func (l *Loop) Post(fn func()) {
	l.deliver(RunMsg{Fn: fn})
}

// Handle runs the callback carried by a FiredMsg or RunMsg. It returns false
// for other messages and for timers that were cancelled in the meantime.
func (l *Loop) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case FiredMsg:
		l.mu.Lock()
		t, ok := l.pending[msg.ID]
		delete(l.pending, msg.ID)
		l.mu.Unlock()
		if !ok {
			return false
		}
		t.fn()
		return true
	case RunMsg:
		if msg.Fn != nil {
			msg.Fn()
		}
		return true
	}
	return false
}

// Pending returns the number of timers that have neither fired nor been
// cancelled.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Stop cancels every pending timer.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, t := range l.pending {
		t.timer.Stop()
		delete(l.pending, id)
	}
}

func (l *Loop) deliver(msg tea.Msg) {
	l.mu.Lock()
	send := l.send
	if send == nil {
		l.backlog = append(l.backlog, msg)
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	send(msg)
}

func (l *Loop) cancel(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.pending[id]; ok {
		t.timer.Stop()
		delete(l.pending, id)
	}
}

type loopHandle struct {
	loop *Loop
	id   uint64
}

func (h loopHandle) Cancel() { h.loop.cancel(h.id) }
