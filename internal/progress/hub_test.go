package progress

import "testing"

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe("run-1", 4)

	h.Publish(Event{RunID: "run-1", Phase: "year"})
	h.Publish(Event{RunID: "run-2", Phase: "year"}) // different run, must not arrive

	ev := <-ch
	if ev.RunID != "run-1" || ev.Phase != "year" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	select {
	case ev := <-ch:
		t.Fatalf("received event for another run: %+v", ev)
	default:
	}
}

func TestHubCloseEndsStream(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe("run-1", 1)
	h.Close("run-1")

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel after Close")
	}
	// Publishing after Close is a no-op.
	h.Publish(Event{RunID: "run-1", Phase: "year"})
}

func TestHubDropsWhenSubscriberFull(t *testing.T) {
	h := NewHub()
	h.Subscribe("run-1", 1)

	h.Publish(Event{RunID: "run-1", Phase: "year"})
	h.Publish(Event{RunID: "run-1", Phase: "year"}) // buffer full, dropped

	if got := h.Dropped(); got != 1 {
		t.Fatalf("dropped = %d, want 1", got)
	}
}

func TestHubMultipleSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe("run-1", 1)
	b := h.Subscribe("run-1", 1)

	h.Publish(Event{RunID: "run-1", Phase: "finished"})

	if ev := <-a; ev.Phase != "finished" {
		t.Fatalf("subscriber a: %+v", ev)
	}
	if ev := <-b; ev.Phase != "finished" {
		t.Fatalf("subscriber b: %+v", ev)
	}
}
