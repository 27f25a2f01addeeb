package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity: a durable work
// item consumed by the worker pool.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("meeting_id").
			Optional().
			Comment("Empty for PROCESS_AUDIO jobs created before their meeting exists"),
		field.String("job_type").
			NotEmpty().
			Immutable().
			Comment("One of CHUNK_SUMMARY, COMPOSE_SUMMARY, ANNOTATE_ACTION_ITEMS, PROCESS_AUDIO"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0).
			NonNegative(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Worker id holding the job, for multi-replica coordination"),
		field.Time("last_heartbeat").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("run_after").
			Default(time.Now).
			Comment("Claim gate; pushed forward on retry backoff"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("meeting", Meeting.Type).
			Ref("jobs").
			Field("meeting_id").
			Unique(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "run_after", "created_at"),
		index.Fields("meeting_id", "job_type", "status"),
		index.Fields("status", "last_heartbeat"),
	}
}
