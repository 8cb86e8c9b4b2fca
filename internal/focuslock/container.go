package focuslock

import "time"

type FocusLockContainer struct {
	Handler *Handler
	Gate    *Gate
}

func NewFocusLockContainer(source QuestionSource, idleTimeout time.Duration) *FocusLockContainer {
	if idleTimeout <= 0 {
		idleTimeout = IdleTimeout
	}
	gate := NewGate(source, idleTimeout)
	handler := NewHandler(gate)

	return &FocusLockContainer{
		Handler: handler,
		Gate:    gate,
	}
}
