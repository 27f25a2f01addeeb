package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Meeting holds the schema definition for the Meeting entity.
type Meeting struct {
	ent.Schema
}

// Fields of the Meeting.
func (Meeting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("meeting_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Bool("finalized").
			Default(false),
		field.Time("finalized_at").
			Optional().
			Nillable().
			Comment("Set exactly once when the meeting is finalized"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Meeting.
func (Meeting) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("segments", Segment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("summaries", Summary.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("jobs", Job.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Meeting.
func (Meeting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("finalized"),
		index.Fields("created_at"),
	}
}
