package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(id string) *WizardSession {
	return &WizardSession{
		ID:    id,
		Topic: "Learn Go",
		Items: []WizardQA{
			{QuestionID: "q1", Question: "first"},
			{QuestionID: "q2", Question: "second"},
		},
	}
}

func TestPutAndGet(t *testing.T) {
	store := NewWizardSessions()
	store.Put(newSession("s1"), time.Minute)

	got, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "Learn Go", got.Topic)
	assert.Len(t, got.Items, 2)
}

func TestGetReturnsCopy(t *testing.T) {
	store := NewWizardSessions()
	store.Put(newSession("s1"), time.Minute)

	got, _ := store.Get("s1")
	got.Items[0].Answer = "mutated"
	got.Step = 1

	fresh, _ := store.Get("s1")
	assert.Equal(t, "", fresh.Items[0].Answer)
	assert.Equal(t, 0, fresh.Step)
}

func TestGetExpired(t *testing.T) {
	store := NewWizardSessions()
	store.Put(newSession("s1"), -time.Second)

	_, ok := store.Get("s1")
	assert.False(t, ok)
}

func TestUpdateMutatesUnderLock(t *testing.T) {
	store := NewWizardSessions()
	store.Put(newSession("s1"), time.Minute)

	updated, err := store.Update("s1", func(s *WizardSession) error {
		s.Items[0].Answer = "an answer"
		s.Step = 1
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Step)

	got, _ := store.Get("s1")
	assert.Equal(t, "an answer", got.Items[0].Answer)
	assert.Equal(t, 1, got.Step)
}

func TestUpdateMissingSession(t *testing.T) {
	store := NewWizardSessions()

	_, err := store.Update("nope", func(s *WizardSession) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateExpiredSession(t *testing.T) {
	store := NewWizardSessions()
	store.Put(newSession("s1"), -time.Second)

	_, err := store.Update("s1", func(s *WizardSession) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDelete(t *testing.T) {
	store := NewWizardSessions()
	store.Put(newSession("s1"), time.Minute)
	store.Delete("s1")

	_, ok := store.Get("s1")
	assert.False(t, ok)
}
