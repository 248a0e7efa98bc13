package session

import (
	"sync"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(time.Hour, 10*time.Minute)
}

func TestGetOrCreateAssignsID(t *testing.T) {
	store := newTestStore(t)

	sess := store.GetOrCreate("")
	if sess.ID == "" {
		t.Fatal("expected generated session id")
	}
	if sess.State != StateInitial {
		t.Errorf("expected initial state, got %s", sess.State)
	}

	again, found := store.Get(sess.ID)
	if !found || again != sess {
		t.Error("expected stored session to be retrievable")
	}
}

func TestGetOrCreateUnknownIDCreatesFresh(t *testing.T) {
	store := newTestStore(t)

	sess := store.GetOrCreate("client-supplied-id")
	if sess.ID != "client-supplied-id" {
		t.Errorf("expected the supplied id to be kept, got %q", sess.ID)
	}
}

func TestCount(t *testing.T) {
	store := newTestStore(t)

	store.GetOrCreate("a")
	store.GetOrCreate("b")
	store.GetOrCreate("a") // existing, not a new session

	if got := store.Count(); got != 2 {
		t.Errorf("expected 2 sessions, got %d", got)
	}

	store.Delete("a")
	if got := store.Count(); got != 1 {
		t.Errorf("expected 1 session after delete, got %d", got)
	}
}

func TestExpiry(t *testing.T) {
	store := NewStore(10*time.Millisecond, time.Millisecond)
	store.GetOrCreate("ephemeral")

	time.Sleep(30 * time.Millisecond)

	if _, found := store.Get("ephemeral"); found {
		t.Error("expected session to expire")
	}
}

func TestLockSerializesSameSession(t *testing.T) {
	store := newTestStore(t)
	sess := store.GetOrCreate("contended")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := store.Lock(sess.ID)
			defer unlock()
			sess.Append(Message{Role: RoleUser, Content: "turn", Type: TypeText})
		}()
	}
	wg.Wait()

	if len(sess.Messages) != 50 {
		t.Errorf("expected 50 messages, got %d (lost update)", len(sess.Messages))
	}
}

func TestResolveNext(t *testing.T) {
	sess := NewSession("s")
	sess.PendingClarifications = []string{"fast", "secure"}
	sess.State = StateAwaiting

	term, ok := sess.ResolveNext("2 seconds")
	if !ok || term != "fast" {
		t.Fatalf("expected head term 'fast', got %q ok=%v", term, ok)
	}
	if sess.Clarifications["fast"] != "2 seconds" {
		t.Errorf("clarification not recorded: %v", sess.Clarifications)
	}
	if len(sess.PendingClarifications) != 1 || sess.PendingClarifications[0] != "secure" {
		t.Errorf("unexpected queue: %v", sess.PendingClarifications)
	}

	term, ok = sess.ResolveNext("AES-256")
	if !ok || term != "secure" {
		t.Fatalf("expected 'secure', got %q", term)
	}
	if _, ok := sess.ResolveNext("extra"); ok {
		t.Error("expected empty queue to report ok=false")
	}

	if got := sess.ClarifiedTerms; len(got) != 2 || got[0] != "fast" || got[1] != "secure" {
		t.Errorf("unexpected resolution order: %v", got)
	}
}

func TestResolveInvariant(t *testing.T) {
	sess := NewSession("s")
	sess.PendingClarifications = []string{"fast", "secure", "reliable"}

	total := len(sess.PendingClarifications) + len(sess.Clarifications)
	for {
		if _, ok := sess.ResolveNext("answer"); !ok {
			break
		}
		now := len(sess.PendingClarifications) + len(sess.Clarifications)
		if now != total {
			t.Fatalf("each turn must move exactly one term: had %d, now %d", total, now)
		}
	}
	if len(sess.PendingClarifications) != 0 || len(sess.Clarifications) != 3 {
		t.Errorf("unexpected final state: pending=%v resolved=%v", sess.PendingClarifications, sess.Clarifications)
	}
}

func TestResetCycleKeepsHistory(t *testing.T) {
	sess := NewSession("s")
	sess.Append(Message{Role: RoleUser, Content: "hello", Type: TypeText})
	sess.State = StateCompleted
	sess.Requirements = nil
	sess.PendingClarifications = []string{"leftover"}
	sess.Clarifications["old"] = "value"
	sess.PDFBytes = []byte("pdf")

	sess.ResetCycle()

	if sess.State != StateInitial {
		t.Errorf("expected initial state, got %s", sess.State)
	}
	if len(sess.PendingClarifications) != 0 || len(sess.Clarifications) != 0 {
		t.Error("expected clarification state cleared")
	}
	if sess.PDFBytes != nil {
		t.Error("expected PDF cleared")
	}
	if len(sess.Messages) != 1 {
		t.Error("expected message history preserved")
	}
}

func TestEvictionKeepsHeldLock(t *testing.T) {
	store := newTestStore(t)
	store.GetOrCreate("s1")

	unlock := store.Lock("s1")
	// Evicting the session while its lock is held must not discard the
	// mutex; a second turn for the same id has to wait for the first.
	store.Delete("s1")

	acquired := make(chan struct{})
	go func() {
		u := store.Lock("s1")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first was still held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired after release")
	}
}

func TestEvictionDropsIdleLock(t *testing.T) {
	store := newTestStore(t)
	store.GetOrCreate("s2")
	store.Lock("s2")()

	store.Delete("s2")

	store.mu.Lock()
	_, ok := store.locks["s2"]
	store.mu.Unlock()
	if ok {
		t.Error("expected idle lock removed on eviction")
	}
}
