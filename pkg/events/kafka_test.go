package events

import (
	"context"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	event := NewEvent("student", ActionSaved, 3)
	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, w.messages, 1)
	assert.Equal(t, "student:3", string(w.messages[0].Key))

	var got Event
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &got))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, ActionSaved, got.Action)
	assert.Equal(t, 3, got.EntityID)
	assert.True(t, event.At.Equal(got.At))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}}

	err := p.Publish(context.Background(), NewEvent("employee", ActionDeleted, 1))
	assert.ErrorContains(t, err, "broker down")
}

func TestNewKafkaPublisher(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "cruddemo.events")

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "cruddemo.events", w.Topic)
	assert.Equal(t, "localhost:9092", w.Addr.String())
}
