package checkout

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_StartAndGet(t *testing.T) {
	store := NewSessionStore(time.Minute)

	sess := store.Start("sess_abc")
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, StepDelivery, sess.Wizard.Step)

	got, err := store.Get(sess.ID, "sess_abc")
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestSessionStore_WrongCartTokenRejected(t *testing.T) {
	store := NewSessionStore(time.Minute)
	sess := store.Start("sess_abc")

	_, err := store.Get(sess.ID, "sess_other")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_RestartReplacesPrevious(t *testing.T) {
	store := NewSessionStore(time.Minute)

	first := store.Start("sess_abc")
	second := store.Start("sess_abc")

	_, err := store.Get(first.ID, "sess_abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Get(second.ID, "sess_abc")
	assert.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStore_End(t *testing.T) {
	store := NewSessionStore(time.Minute)
	sess := store.Start("sess_abc")

	store.End(sess.ID)
	_, err := store.Get(sess.ID, "sess_abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

// Two requests on the same checkout id mutate the shared wizard through the
// session mutex; run with -race.
func TestSession_ConcurrentWizardAccess(t *testing.T) {
	store := NewSessionStore(time.Minute)
	sess := store.Start("sess_abc")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := store.Get(sess.ID, "sess_abc")
				if err != nil {
					return
				}
				got.Lock()
				got.Wizard.Discount = &AppliedDiscount{Code: "SAVE10"}
				got.Wizard.Discount = nil
				got.Unlock()
			}
		}()
	}
	wg.Wait()

	sess.Lock()
	assert.Nil(t, sess.Wizard.Discount)
	sess.Unlock()
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(10 * time.Millisecond)
	sess := store.Start("sess_abc")

	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(sess.ID, "sess_abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}
