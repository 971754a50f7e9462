// internal/event/event_test.go
package event

import "testing"

type recordingListener struct {
	received []Event
}

func (r *recordingListener) OnEvent(e Event) {
	r.received = append(r.received, e)
}

func TestDispatchReachesEverySubscriber(t *testing.T) {
	d := NewDispatcher()
	first := &recordingListener{}
	second := &recordingListener{}
	d.Subscribe(EnemyDestroyed, first)
	d.Subscribe(EnemyDestroyed, second)

	d.Dispatch(Event{Type: EnemyDestroyed, Data: EnemyDestroyedData{ID: 3, Gold: 10}})

	for i, listener := range []*recordingListener{first, second} {
		if len(listener.received) != 1 {
			t.Fatalf("listener %d received %d events, want 1", i, len(listener.received))
		}
		data, ok := listener.received[0].Data.(EnemyDestroyedData)
		if !ok || data.Gold != 10 {
			t.Errorf("listener %d payload = %+v, want gold 10", i, listener.received[0].Data)
		}
	}
}

func TestDispatchSkipsOtherTypes(t *testing.T) {
	d := NewDispatcher()
	listener := &recordingListener{}
	d.Subscribe(EnemyDestroyed, listener)

	d.Dispatch(Event{Type: BossPhaseStarted, Data: 2})

	if len(listener.received) != 0 {
		t.Errorf("listener received %d events for an unsubscribed type, want 0", len(listener.received))
	}
}

func TestDispatchWithoutSubscribers(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(Event{Type: ItemPickedUp}) // must not panic
}
