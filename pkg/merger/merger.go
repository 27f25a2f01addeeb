// Package merger deduplicates and ranks decisions, action items,
// topics, and agenda entries across partial summaries. It is pure and
// deterministic given its input ordering.
package merger

import (
	"sort"
	"strings"

	"github.com/recapcrew/recap/pkg/models"
)

// DefaultThreshold is the similarity above which two items are
// considered duplicates.
const DefaultThreshold = 0.85

// Merger folds partial summaries into one.
type Merger struct {
	threshold float64
}

// New builds a merger with the given similarity threshold. Values
// outside (0, 1] fall back to the default.
func New(threshold float64) *Merger {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Merger{threshold: threshold}
}

// Merge combines partial summaries: narratives are concatenated,
// agenda entries are deduplicated exactly, and decisions, topics, and
// action items are deduplicated by string similarity then sorted by
// confidence descending (stable, so insertion order breaks ties).
func (m *Merger) Merge(partials []models.SummaryContent) models.SummaryContent {
	out := models.SummaryContent{
		Decisions:   []models.Decision{},
		ActionItems: []models.ActionItem{},
		Topics:      []models.Topic{},
	}

	var narratives []string
	for _, p := range partials {
		if s := strings.TrimSpace(p.Summary); s != "" {
			narratives = append(narratives, s)
		}
		out.Agenda = mergeAgenda(out.Agenda, p.Agenda)
		for _, d := range p.Decisions {
			out.Decisions = m.mergeDecision(out.Decisions, d)
		}
		for _, a := range p.ActionItems {
			out.ActionItems = m.mergeActionItem(out.ActionItems, a)
		}
		for _, tp := range p.Topics {
			out.Topics = m.mergeTopic(out.Topics, tp)
		}
	}
	out.Summary = strings.Join(narratives, " ")

	sort.SliceStable(out.Decisions, func(i, j int) bool {
		return out.Decisions[i].Confidence > out.Decisions[j].Confidence
	})
	sort.SliceStable(out.ActionItems, func(i, j int) bool {
		return out.ActionItems[i].Confidence > out.ActionItems[j].Confidence
	})
	sort.SliceStable(out.Topics, func(i, j int) bool {
		return out.Topics[i].Confidence > out.Topics[j].Confidence
	})

	return out
}

// mergeAgenda appends entries not already present, comparing
// case-insensitively and preserving first-seen order.
func mergeAgenda(existing, incoming []string) []string {
	for _, item := range incoming {
		found := false
		for _, have := range existing {
			if strings.EqualFold(strings.TrimSpace(have), strings.TrimSpace(item)) {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, item)
		}
	}
	return existing
}

func (m *Merger) mergeDecision(existing []models.Decision, d models.Decision) []models.Decision {
	for i, have := range existing {
		if ratio(normalize(have.Text), normalize(d.Text)) >= m.threshold {
			if d.Confidence > have.Confidence {
				existing[i].Confidence = d.Confidence
			}
			existing[i].SourceSegmentIDs = unionIDs(have.SourceSegmentIDs, d.SourceSegmentIDs)
			return existing
		}
	}
	return append(existing, d)
}

// mergeActionItem folds duplicates preferring the richest fields: a
// duplicate supplying an owner or due date the incumbent lacks donates
// it, and the higher confidence wins.
func (m *Merger) mergeActionItem(existing []models.ActionItem, a models.ActionItem) []models.ActionItem {
	for i, have := range existing {
		if ratio(normalize(have.Text), normalize(a.Text)) >= m.threshold {
			if existing[i].Owner == "" && a.Owner != "" {
				existing[i].Owner = a.Owner
			}
			if existing[i].DueDateISO == "" && a.DueDateISO != "" {
				existing[i].DueDateISO = a.DueDateISO
			}
			if a.Confidence > have.Confidence {
				existing[i].Confidence = a.Confidence
			}
			existing[i].SourceSegmentIDs = unionIDs(have.SourceSegmentIDs, a.SourceSegmentIDs)
			return existing
		}
	}
	return append(existing, a)
}

func (m *Merger) mergeTopic(existing []models.Topic, tp models.Topic) []models.Topic {
	for i, have := range existing {
		if ratio(normalize(have.Name), normalize(tp.Name)) >= m.threshold {
			if tp.Confidence > have.Confidence {
				existing[i].Confidence = tp.Confidence
			}
			return existing
		}
	}
	return append(existing, tp)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// unionIDs merges two id lists preserving first-seen order.
func unionIDs(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := make([]string, 0, len(a)+len(b))
	for _, id := range a {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range b {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
