package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It ticks the status presenter, refreshes the editor frame and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Editor   *EditorPresenter
	Status   *StatusPresenter
	Schedule func()
}

func NewLoop(editor *EditorPresenter, status *StatusPresenter, schedule func()) *Loop {
	return &Loop{Editor: editor, Status: status, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Editor != nil {
		l.Editor.Refresh()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
