// Package lifecycle exposes graph change events as a lifecycle.Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/lsd/pkg/core"
)

type graphSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits the events of a graph
// watcher. Each emitted lifecycle.Event is a core.Event.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &graphSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *graphSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until ctx is done or the watcher channel closes,
// then closes Events.
func (s *graphSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
