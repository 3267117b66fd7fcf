package events

import "sync"

// Topic can be one of:
//   - favorites_changed
//   - workout_data_changed
type Topic string

const (
	TopicFavoritesChanged   Topic = "favorites_changed"
	TopicWorkoutDataChanged Topic = "workout_data_changed"
)

func (t Topic) String() string {
	return string(t)
}

// Event is published by the store after every successful mutation.
// ExerciseID is set only for single-exercise favorite toggles; it is
// nil for bulk resets and for workout data changes.
type Event struct {
	Topic      Topic
	ExerciseID *int64
}

type Handler func(Event)

// Bus is a process-wide typed publish/subscribe mechanism. The store
// publishes without knowing who listens; consumers pull fresh data via
// store queries after being notified. Fan-out is synchronous.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[Topic]map[int]Handler
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[Topic]map[int]Handler),
	}
}

// Subscribe registers a handler for a topic and returns a function
// that removes the registration.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.subs[e.Topic]))
	for _, h := range b.subs[e.Topic] {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	// handlers run outside the lock, so a handler may subscribe
	// or unsubscribe without deadlocking
	for _, h := range handlers {
		h(e)
	}
}

// PublishFavoritesChanged notifies that an exercise's favorite flag
// changed. A nil id means a bulk reset touched all favorites.
func (b *Bus) PublishFavoritesChanged(exerciseID *int64) {
	b.Publish(Event{Topic: TopicFavoritesChanged, ExerciseID: exerciseID})
}

// PublishWorkoutDataChanged notifies that set or log data changed.
func (b *Bus) PublishWorkoutDataChanged() {
	b.Publish(Event{Topic: TopicWorkoutDataChanged})
}
