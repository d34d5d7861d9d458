package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chayilhub/chayil/internal/domain"
	"github.com/chayilhub/chayil/internal/persist"
)

// fakeAdapter records every save and can be told to fail.
type fakeAdapter struct {
	mu     sync.Mutex
	saves  []domain.PlannerState
	err    error
	stored map[string]domain.PlannerState
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{stored: make(map[string]domain.PlannerState)}
}

func (f *fakeAdapter) Load(_ context.Context, userID string) (*domain.PlannerState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.stored[userID]
	if !ok {
		return nil, persist.ErrNotFound
	}
	return &state, nil
}

func (f *fakeAdapter) Save(_ context.Context, userID string, state domain.PlannerState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.saves = append(f.saves, state)
	f.stored[userID] = state
	return nil
}

func (f *fakeAdapter) lastSave() (domain.PlannerState, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saves) == 0 {
		return domain.PlannerState{}, false
	}
	return f.saves[len(f.saves)-1], true
}

func strPtr(s string) *string { return &s }

func TestPatch_ShallowMerge(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))

	s.Patch(Patch{Notes: strPtr("anotações")})
	got := s.Current()
	assert.Equal(t, "anotações", got.Notes)
	assert.Equal(t, "Ana", got.UserName, "untouched fields survive")
	assert.Len(t, got.Habits, 12)

	s.Patch(Patch{UserName: strPtr("Beatriz")})
	got = s.Current()
	assert.Equal(t, "Beatriz", got.UserName)
	assert.Equal(t, "anotações", got.Notes)
}

func TestPatch_CollectionsReplacedWholesale(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))

	tasks := []domain.Task{{ID: "t1", Text: "Única"}}
	s.Patch(Patch{Tasks: &tasks})
	got := s.Current()
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "Única", got.Tasks[0].Text)
}

func TestPatch_ExtractionOnDiarioChange(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))

	planning := domain.Planning{Diario: "- Ligar para cliente\n- Revisar contrato"}
	got := s.Patch(Patch{Planning: &planning})
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "Ligar para cliente", got.Tasks[0].Text)
	assert.Equal(t, "Revisar contrato", got.Tasks[1].Text)

	// Same text again: nothing new.
	got = s.Patch(Patch{Planning: &planning})
	assert.Len(t, got.Tasks, 2)
}

func TestPatch_NoExtractionWhenDiarioUnchanged(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	seed := domain.NewSeedState("Ana")
	seed.Planning.Diario = "- Tarefa"
	seed.Tasks = []domain.Task{{ID: "t1", Text: "Tarefa", Completed: true}}
	s.Initialize(seed)

	got := s.Patch(Patch{Notes: strPtr("nada a ver")})
	require.Len(t, got.Tasks, 1)
	assert.True(t, got.Tasks[0].Completed)
}

func TestPatch_ExtractionKeepsCompletedTasks(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))
	planning := domain.Planning{Diario: "- Tarefa"}
	got := s.Patch(Patch{Planning: &planning})
	require.Len(t, got.Tasks, 1)

	done := got.Tasks
	done[0].Completed = true
	s.Patch(Patch{Tasks: &done})

	planning2 := domain.Planning{Diario: "- Tarefa\n- Outra"}
	got = s.Patch(Patch{Planning: &planning2})
	require.Len(t, got.Tasks, 2)
	assert.True(t, got.Tasks[0].Completed, "completed task must survive re-extraction")
	assert.Equal(t, "Outra", got.Tasks[1].Text)
}

func TestSubscribe_NotifiedWithSnapshot(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))

	var seen []domain.PlannerState
	unsub := s.Subscribe(func(st domain.PlannerState) {
		seen = append(seen, st)
	})

	s.Patch(Patch{Notes: strPtr("primeira")})
	s.Patch(Patch{Notes: strPtr("segunda")})
	require.Len(t, seen, 2)
	assert.Equal(t, "primeira", seen[0].Notes)
	assert.Equal(t, "segunda", seen[1].Notes)

	unsub()
	s.Patch(Patch{Notes: strPtr("terceira")})
	assert.Len(t, seen, 2, "unsubscribed listener stays silent")
}

func TestInitialize_NoOpAfterPatch(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))
	s.Patch(Patch{Notes: strPtr("trabalho em andamento")})

	applied := s.Initialize(domain.NewSeedState("Ana"))
	assert.False(t, applied, "late load must not clobber user edits")
	assert.Equal(t, "trabalho em andamento", s.Current().Notes)
}

func TestInitialize_LoadWinsBeforeFirstPatch(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	first := domain.NewSeedState("Ana")
	require.True(t, s.Initialize(first))

	loaded := domain.NewSeedState("Ana")
	loaded.Notes = "restaurado do armazenamento"
	require.True(t, s.Initialize(loaded))
	assert.Equal(t, "restaurado do armazenamento", s.Current().Notes)
}

func TestPatch_WriteThrough(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))
	s.Patch(Patch{Notes: strPtr("persistida")})
	s.Flush()

	last, ok := adapter.lastSave()
	require.True(t, ok)
	assert.Equal(t, "persistida", last.Notes)
}

func TestPatch_LastWriteWins(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))
	for i := 0; i < 20; i++ {
		s.Patch(Patch{Notes: strPtr("nota final")})
	}
	s.Flush()

	last, ok := adapter.lastSave()
	require.True(t, ok)
	assert.Equal(t, "nota final", last.Notes)
}

func TestPatch_SaveErrorsSwallowed(t *testing.T) {
	adapter := newFakeAdapter()
	adapter.err = errors.New("disk full")
	s := New(adapter, "u1")
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))
	got := s.Patch(Patch{Notes: strPtr("sobrevive")})
	s.Flush()

	assert.Equal(t, "sobrevive", got.Notes)
	assert.Equal(t, "sobrevive", s.Current().Notes, "aggregate stays authoritative")
}

func TestReset_ClearsAggregateKeepsStorage(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))
	s.Patch(Patch{Notes: strPtr("antes do logout")})
	s.Flush()

	s.Reset()
	assert.Equal(t, domain.PlannerState{}, s.Current())

	stored, err := adapter.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "antes do logout", stored.Notes, "sign-out leaves storage untouched")
}

func TestClose_FlushesPendingWrites(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")

	s.Initialize(domain.NewSeedState("Ana"))
	s.Patch(Patch{Notes: strPtr("última")})
	s.Close()

	last, ok := adapter.lastSave()
	require.True(t, ok)
	assert.Equal(t, "última", last.Notes)

	// Closing twice is safe.
	s.Close()
}

func TestPatch_SnapshotIsolation(t *testing.T) {
	adapter := newFakeAdapter()
	s := New(adapter, "u1")
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))
	snap := s.Current()
	snap.Habits[0].Days[0] = true

	assert.False(t, s.Current().Habits[0].Days[0], "snapshots must not alias store state")
}

func TestPatchObserver(t *testing.T) {
	adapter := newFakeAdapter()

	var events []PatchEvent
	obs := observerFunc{onPatch: func(e PatchEvent) { events = append(events, e) }}
	s := New(adapter, "u1", WithObserver(obs))
	defer s.Close()

	s.Initialize(domain.NewSeedState("Ana"))
	planning := domain.Planning{Diario: "- Nova tarefa"}
	s.Patch(Patch{Planning: &planning, Notes: strPtr("x")})

	require.Len(t, events, 1)
	assert.Equal(t, "u1", events[0].UserID)
	assert.ElementsMatch(t, []string{"planning", "notes"}, events[0].Fields)
	assert.Equal(t, 1, events[0].ExtractedTasks)
}

type observerFunc struct {
	onPatch func(PatchEvent)
	onSave  func(SaveEvent)
}

func (o observerFunc) OnPatch(e PatchEvent) {
	if o.onPatch != nil {
		o.onPatch(e)
	}
}

func (o observerFunc) OnSave(e SaveEvent) {
	if o.onSave != nil {
		o.onSave(e)
	}
}
