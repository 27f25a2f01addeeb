package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Segment holds the schema definition for the Segment entity.
// Segments are append-only; the only post-creation write is the
// summarized_at stamp set alongside the covering incremental summary.
type Segment struct {
	ent.Schema
}

// Fields of the Segment.
func (Segment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("segment_id").
			Unique().
			Immutable(),
		field.String("meeting_id").
			Immutable(),
		field.String("speaker").
			Immutable(),
		field.Time("ts").
			Immutable().
			Comment("Speaker timestamp from the ingest payload, not arrival time"),
		field.Text("text").
			Immutable(),
		field.Int("token_count").
			NonNegative().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("summarized_at").
			Optional().
			Nillable().
			Comment("Set when an incremental summary covering this segment lands; NULL segments form the next chunk-summary window"),
	}
}

// Edges of the Segment.
func (Segment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("meeting", Meeting.Type).
			Ref("segments").
			Field("meeting_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Segment.
func (Segment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("meeting_id", "ts"),
		index.Fields("meeting_id", "created_at"),
		index.Fields("meeting_id", "summarized_at"),
	}
}
