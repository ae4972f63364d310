package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sh1nto/quasar/internal/tabs"
)

// callbackMsg carries deferred engine work into the Bubble Tea update loop.
type callbackMsg struct {
	fn func()
}

// Dispatcher implements tabs.Scheduler on top of the Bubble Tea program.
// Timers fire on background goroutines, but the callbacks themselves are
// shipped through Program.Send and run inside Update, so the engine stays
// single-threaded.
type Dispatcher struct {
	mu   sync.Mutex
	send func(tea.Msg)

	tickQueued bool
	tickFns    []func()
}

// NewDispatcher creates a dispatcher. Attach must be called with the
// program's Send before any engine activity.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Attach wires the program's Send function. Ticks queued before a program
// existed are shipped now; Send can block until the program loop starts, so
// the catch-up delivery happens off this goroutine.
func (d *Dispatcher) Attach(send func(tea.Msg)) {
	d.mu.Lock()
	d.send = send
	pending := d.tickQueued
	d.mu.Unlock()

	if pending {
		go send(callbackMsg{fn: d.flushTick})
	}
}

func (d *Dispatcher) post(fn func()) {
	d.mu.Lock()
	send := d.send
	d.mu.Unlock()
	if send != nil {
		send(callbackMsg{fn: fn})
	}
}

// NextTick coalesces callbacks registered within the same tick into one
// delivery, preserving registration order.
func (d *Dispatcher) NextTick(fn func()) {
	d.mu.Lock()
	d.tickFns = append(d.tickFns, fn)
	queued := d.tickQueued
	d.tickQueued = true
	d.mu.Unlock()

	if queued {
		return
	}
	d.post(d.flushTick)
}

func (d *Dispatcher) flushTick() {
	d.mu.Lock()
	fns := d.tickFns
	d.tickFns = nil
	d.tickQueued = false
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// AfterFunc runs fn once after delay, on the update loop.
func (d *Dispatcher) AfterFunc(delay time.Duration, fn func()) tabs.Handle {
	h := &timerHandle{}
	h.timer = time.AfterFunc(delay, func() {
		d.post(func() {
			if !h.stopped() {
				fn()
			}
		})
	})
	return h
}

// Interval runs fn every period until stopped.
func (d *Dispatcher) Interval(period time.Duration, fn func()) tabs.Handle {
	h := &tickerHandle{ticker: time.NewTicker(period), done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-h.ticker.C:
				d.post(func() {
					if !h.stopped() {
						fn()
					}
				})
			case <-h.done:
				return
			}
		}
	}()
	return h
}

type timerHandle struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopFlg bool
}

func (h *timerHandle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopFlg {
		return
	}
	h.stopFlg = true
	h.timer.Stop()
}

func (h *timerHandle) stopped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopFlg
}

type tickerHandle struct {
	mu      sync.Mutex
	ticker  *time.Ticker
	done    chan struct{}
	stopFlg bool
}

func (h *tickerHandle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopFlg {
		return
	}
	h.stopFlg = true
	h.ticker.Stop()
	close(h.done)
}

func (h *tickerHandle) stopped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopFlg
}
