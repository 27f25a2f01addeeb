package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Summary holds the schema definition for the Summary entity.
// Summaries are append-only: a meeting accumulates incrementals during
// ingest and one or more finals after finalize (latest-by-creation wins
// for reads).
type Summary struct {
	ent.Schema
}

// Fields of the Summary.
func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("summary_id").
			Unique().
			Immutable(),
		field.String("meeting_id").
			Immutable(),
		field.Enum("summary_type").
			Values("incremental", "final").
			Immutable(),
		field.JSON("content", map[string]interface{}{}).
			Comment("models.SummaryContent serialized as JSON"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Summary.
func (Summary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("meeting", Meeting.Type).
			Ref("summaries").
			Field("meeting_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Summary.
func (Summary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("meeting_id", "summary_type", "created_at"),
	}
}
