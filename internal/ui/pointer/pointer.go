// Package pointer fans screen-level mouse presses out to scoped subscribers.
//
// bubbletea delivers every mouse event to the root model. Components that
// need to observe presses anywhere on the screen (to close a dropdown on an
// outside click, for example) subscribe to a Hub owned by the host and close
// their Subscription when they are deactivated.
package pointer

import tea "github.com/charmbracelet/bubbletea"

// Handler observes a mouse press and may return a command for the update loop.
type Handler func(msg tea.MouseMsg) tea.Cmd

// Hub dispatches mouse presses to live subscriptions in subscription order.
// It is owned by the host model and used from the update loop only.
type Hub struct {
	subs   []*Subscription
	nextID int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscription is a registered handler. Close releases it.
type Subscription struct {
	id      int
	hub     *Hub
	handler Handler
	closed  bool
}

// Subscribe registers fn and returns its subscription.
func (h *Hub) Subscribe(fn Handler) *Subscription {
	h.nextID++
	sub := &Subscription{id: h.nextID, hub: h, handler: fn}
	h.subs = append(h.subs, sub)
	return sub
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	return len(h.subs)
}

// Dispatch delivers msg to every live subscription when it is a press.
// Motion, release and wheel events are ignored.
func (h *Hub) Dispatch(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || tea.MouseEvent(msg).IsWheel() {
		return nil
	}
	// Handlers may close subscriptions while we iterate.
	subs := append([]*Subscription(nil), h.subs...)
	var cmds []tea.Cmd
	for _, sub := range subs {
		if sub.closed {
			continue
		}
		if cmd := sub.handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (h *Hub) remove(id int) {
	for i, sub := range h.subs {
		if sub.id == id {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}

// Close deregisters the subscription. Closing twice is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.hub.remove(s.id)
}

// Closed reports whether Close has been called.
func (s *Subscription) Closed() bool {
	return s == nil || s.closed
}
