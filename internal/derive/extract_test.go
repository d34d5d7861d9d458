package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chayilhub/chayil/internal/domain"
)

func TestExtractCandidates_Markers(t *testing.T) {
	diario := "- Ligar para cliente\n• Revisar contrato\n* Postar no Instagram"
	got := ExtractCandidates(diario)
	assert.Equal(t, []string{"Ligar para cliente", "Revisar contrato", "Postar no Instagram"}, got)
}

func TestExtractCandidates_MarkerEquivalence(t *testing.T) {
	for _, marker := range []string{"-", "•", "*"} {
		got := ExtractCandidates(marker + " Enviar proposta")
		assert.Equal(t, []string{"Enviar proposta"}, got, "marker=%s", marker)
	}
}

func TestExtractCandidates_IgnoresNonBulletLines(t *testing.T) {
	diario := "Foco do dia\n- Ligar para cliente\n\nanotações soltas\n-\n-   \n  - Revisar contrato"
	got := ExtractCandidates(diario)
	assert.Equal(t, []string{"Ligar para cliente", "Revisar contrato"}, got)
}

func TestExtractCandidates_Empty(t *testing.T) {
	assert.Empty(t, ExtractCandidates(""))
	assert.Empty(t, ExtractCandidates("texto sem marcadores\noutra linha"))
}

func TestSyncTasks_AppendsNewInOrder(t *testing.T) {
	added := SyncTasks(nil, "- Primeira\n- Segunda")
	require.Len(t, added, 2)
	assert.Equal(t, "Primeira", added[0].Text)
	assert.Equal(t, "Segunda", added[1].Text)
	assert.False(t, added[0].Completed)
	assert.NotEmpty(t, added[0].ID)
	assert.NotEqual(t, added[0].ID, added[1].ID)
}

func TestSyncTasks_Idempotent(t *testing.T) {
	diario := "- Ligar para cliente\n- Revisar contrato"
	first := SyncTasks(nil, diario)
	require.Len(t, first, 2)

	second := SyncTasks(first, diario)
	assert.Empty(t, second, "unchanged text should add nothing")
}

func TestSyncTasks_MatchIgnoresCompletionAndMarker(t *testing.T) {
	existing := []domain.Task{
		{ID: "t1", Text: "Ligar para cliente", Completed: true},
	}
	added := SyncTasks(existing, "* Ligar para cliente")
	assert.Empty(t, added, "completed task with same text still matches")
}

func TestSyncTasks_MatchIsCaseSensitive(t *testing.T) {
	existing := []domain.Task{
		{ID: "t1", Text: "ligar para cliente"},
	}
	added := SyncTasks(existing, "- Ligar para cliente")
	require.Len(t, added, 1)
	assert.Equal(t, "Ligar para cliente", added[0].Text)
}

func TestSyncTasks_NonDestructive(t *testing.T) {
	existing := []domain.Task{
		{ID: "t1", Text: "Tarefa antiga", Completed: true},
	}
	added := SyncTasks(existing, "- Tarefa nova")
	require.Len(t, added, 1)
	assert.Equal(t, "Tarefa antiga", existing[0].Text)
	assert.True(t, existing[0].Completed)
}

func TestSyncTasks_DuplicateBulletAddedOnce(t *testing.T) {
	added := SyncTasks(nil, "- Repetida\n- Repetida")
	assert.Len(t, added, 1)
}
