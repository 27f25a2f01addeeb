package merger

import (
	"testing"

	"github.com/recapcrew/recap/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, ratio("", ""))
	assert.Equal(t, 1.0, ratio("approve budget", "approve budget"))
	assert.Equal(t, 0.0, ratio("abc", "xyz"))

	// Symmetry
	a, b := "approve the q4 budget", "approve the q4 budget now"
	assert.InDelta(t, ratio(a, b), ratio(b, a), 1e-9)

	// Near-duplicates score high, unrelated strings low.
	assert.Greater(t, ratio("ship the new release", "ship the new releases"), 0.9)
	assert.Less(t, ratio("ship the new release", "hire two engineers"), 0.5)
}

func TestMerge_Empty(t *testing.T) {
	m := New(DefaultThreshold)

	out := m.Merge(nil)
	assert.Empty(t, out.Summary)
	assert.Empty(t, out.Decisions)
	assert.Empty(t, out.ActionItems)
	assert.Empty(t, out.Topics)

	out = m.Merge([]models.SummaryContent{{}, {}})
	assert.Empty(t, out.Summary)
	assert.Empty(t, out.Decisions)
}

func TestMerge_NarrativeConcatenation(t *testing.T) {
	m := New(DefaultThreshold)
	out := m.Merge([]models.SummaryContent{
		{Summary: "First part."},
		{Summary: ""},
		{Summary: "Second part."},
	})
	assert.Equal(t, "First part. Second part.", out.Summary)
}

func TestMerge_AgendaExactDedupe(t *testing.T) {
	m := New(DefaultThreshold)
	out := m.Merge([]models.SummaryContent{
		{Agenda: []string{"Budget", "Hiring"}},
		{Agenda: []string{"budget", "Roadmap"}},
	})
	assert.Equal(t, []string{"Budget", "Hiring", "Roadmap"}, out.Agenda)
}

func TestMerge_IdenticalDecisionsKeepHigherConfidence(t *testing.T) {
	m := New(DefaultThreshold)
	out := m.Merge([]models.SummaryContent{
		{Decisions: []models.Decision{{Text: "Approve the Q4 budget", Confidence: 0.7, SourceSegmentIDs: []string{"s1"}}}},
		{Decisions: []models.Decision{{Text: "Approve the Q4 budget", Confidence: 0.9, SourceSegmentIDs: []string{"s2"}}}},
	})
	require.Len(t, out.Decisions, 1)
	assert.Equal(t, 0.9, out.Decisions[0].Confidence)
	assert.Equal(t, []string{"s1", "s2"}, out.Decisions[0].SourceSegmentIDs)
}

func TestMerge_AllIdenticalCollapseToOnePerCategory(t *testing.T) {
	m := New(DefaultThreshold)
	partial := models.SummaryContent{
		Decisions:   []models.Decision{{Text: "Cut scope", Confidence: 0.8}},
		ActionItems: []models.ActionItem{{Text: "Update the roadmap", Confidence: 0.6}},
		Topics:      []models.Topic{{Name: "Planning", Confidence: 0.5}},
	}
	out := m.Merge([]models.SummaryContent{partial, partial, partial})
	assert.Len(t, out.Decisions, 1)
	assert.Len(t, out.ActionItems, 1)
	assert.Len(t, out.Topics, 1)
}

func TestMerge_ActionItemFieldAdoption(t *testing.T) {
	m := New(DefaultThreshold)
	out := m.Merge([]models.SummaryContent{
		{ActionItems: []models.ActionItem{{Text: "Send the contract to legal", Confidence: 0.5}}},
		{ActionItems: []models.ActionItem{{
			Text: "Send the contract to legal", Owner: "dana",
			DueDateISO: "2026-04-01", Confidence: 0.4,
		}}},
	})
	require.Len(t, out.ActionItems, 1)
	item := out.ActionItems[0]
	assert.Equal(t, "dana", item.Owner)
	assert.Equal(t, "2026-04-01", item.DueDateISO)
	assert.Equal(t, 0.5, item.Confidence, "higher confidence wins")
}

func TestMerge_IncumbentFieldsNotOverwritten(t *testing.T) {
	m := New(DefaultThreshold)
	out := m.Merge([]models.SummaryContent{
		{ActionItems: []models.ActionItem{{Text: "Book the venue", Owner: "erin", Confidence: 0.9}}},
		{ActionItems: []models.ActionItem{{Text: "Book the venue", Owner: "frank", Confidence: 0.2}}},
	})
	require.Len(t, out.ActionItems, 1)
	assert.Equal(t, "erin", out.ActionItems[0].Owner)
}

func TestMerge_DistinctItemsSurvive(t *testing.T) {
	m := New(DefaultThreshold)
	out := m.Merge([]models.SummaryContent{
		{Decisions: []models.Decision{{Text: "Approve the Q4 budget", Confidence: 0.8}}},
		{Decisions: []models.Decision{{Text: "Postpone the office move", Confidence: 0.6}}},
	})
	assert.Len(t, out.Decisions, 2)
}

func TestMerge_SortedByConfidenceDescending(t *testing.T) {
	m := New(DefaultThreshold)
	out := m.Merge([]models.SummaryContent{{
		Topics: []models.Topic{
			{Name: "Hiring", Confidence: 0.3},
			{Name: "Budget", Confidence: 0.9},
			{Name: "Roadmap", Confidence: 0.6},
		},
	}})
	require.Len(t, out.Topics, 3)
	assert.Equal(t, "Budget", out.Topics[0].Name)
	assert.Equal(t, "Roadmap", out.Topics[1].Name)
	assert.Equal(t, "Hiring", out.Topics[2].Name)
}

func TestMerge_TiesKeepInsertionOrder(t *testing.T) {
	m := New(DefaultThreshold)
	out := m.Merge([]models.SummaryContent{{
		Decisions: []models.Decision{
			{Text: "Adopt the new style guide", Confidence: 0.5},
			{Text: "Freeze dependency upgrades", Confidence: 0.5},
		},
	}})
	require.Len(t, out.Decisions, 2)
	assert.Equal(t, "Adopt the new style guide", out.Decisions[0].Text)
}

func TestMerge_Idempotence(t *testing.T) {
	m := New(DefaultThreshold)
	a := models.SummaryContent{
		Summary:   "Part one.",
		Decisions: []models.Decision{{Text: "Approve the Q4 budget", Confidence: 0.8}},
		Topics:    []models.Topic{{Name: "Finance", Confidence: 0.7}},
	}
	b := models.SummaryContent{
		Summary:     "Part two.",
		Decisions:   []models.Decision{{Text: "Approve the Q4 budget", Confidence: 0.9}},
		ActionItems: []models.ActionItem{{Text: "Share the deck", Confidence: 0.5}},
	}
	c := models.SummaryContent{
		Topics: []models.Topic{{Name: "Finance", Confidence: 0.4}},
	}

	direct := m.Merge([]models.SummaryContent{a, b, c})
	staged := m.Merge([]models.SummaryContent{m.Merge([]models.SummaryContent{a, b}), c})

	assert.Equal(t, direct.Summary, staged.Summary)
	assert.Equal(t, direct.Decisions, staged.Decisions)
	assert.Equal(t, direct.ActionItems, staged.ActionItems)
	assert.Equal(t, direct.Topics, staged.Topics)
}

func TestNew_BadThresholdFallsBack(t *testing.T) {
	m := New(-1)
	assert.Equal(t, DefaultThreshold, m.threshold)
	m = New(1.5)
	assert.Equal(t, DefaultThreshold, m.threshold)
}
