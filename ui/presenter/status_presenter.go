package presenter

import (
	"log/slog"
	"time"

	"github.com/soocke/retext/domain/editor"
)

// StatusView sets the mode and message labels in the view.
type StatusView interface {
	SetStateLabel(string)
	SetMessage(msg string, isError bool)
}

type statusMessage struct {
	text    string
	isError bool
}

// StatusPresenter receives mode transitions and session messages and
// reflects the latest of each on the next Tick.
type StatusPresenter struct {
	view    StatusView
	latest  editor.Mode
	primed  bool
	pending []editor.Mode
	msg     *statusMessage
}

func NewStatusPresenter(view StatusView) *StatusPresenter {
	return &StatusPresenter{view: view}
}

// OnMode queues a transitioned mode from the session listener.
func (p *StatusPresenter) OnMode(prev, next editor.Mode) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// OnMessage keeps the most recent user-facing message.
func (p *StatusPresenter) OnMessage(level slog.Level, msg string) {
	if p == nil {
		return
	}
	p.msg = &statusMessage{text: msg, isError: level >= slog.LevelError}
}

// Tick processes queued modes and messages and updates the view.
// It clears the pending queue after processing.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if !p.primed {
		p.primed = true
		p.view.SetStateLabel("Mode: " + p.latest.String())
	}
	if len(p.pending) > 0 {
		last := p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
		if last != p.latest {
			p.latest = last
			p.view.SetStateLabel("Mode: " + last.String())
		}
	}
	if p.msg != nil {
		p.view.SetMessage(p.msg.text, p.msg.isError)
		p.msg = nil
	}
}
