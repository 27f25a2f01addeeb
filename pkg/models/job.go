package models

// Job types dispatched by the worker pool.
const (
	JobTypeChunkSummary        = "CHUNK_SUMMARY"
	JobTypeComposeSummary      = "COMPOSE_SUMMARY"
	JobTypeAnnotateActionItems = "ANNOTATE_ACTION_ITEMS"
	JobTypeProcessAudio        = "PROCESS_AUDIO"
)

// Job statuses.
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// Summary types.
const (
	SummaryTypeIncremental = "incremental"
	SummaryTypeFinal       = "final"
)
