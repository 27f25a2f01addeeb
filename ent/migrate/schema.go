// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "job_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "run_after", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "meeting_id", Type: field.TypeString, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_meetings_jobs",
				Columns:    []*schema.Column{JobsColumns[12]},
				RefColumns: []*schema.Column{MeetingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_run_after_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[8], JobsColumns[9]},
			},
			{
				Name:    "job_meeting_id_job_type_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[12], JobsColumns[1], JobsColumns[3]},
			},
			{
				Name:    "job_status_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[7]},
			},
		},
	}
	// MeetingsColumns holds the columns for the "meetings" table.
	MeetingsColumns = []*schema.Column{
		{Name: "meeting_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "finalized", Type: field.TypeBool, Default: false},
		{Name: "finalized_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MeetingsTable holds the schema information for the "meetings" table.
	MeetingsTable = &schema.Table{
		Name:       "meetings",
		Columns:    MeetingsColumns,
		PrimaryKey: []*schema.Column{MeetingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "meeting_finalized",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[3]},
			},
			{
				Name:    "meeting_created_at",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[5]},
			},
		},
	}
	// SegmentsColumns holds the columns for the "segments" table.
	SegmentsColumns = []*schema.Column{
		{Name: "segment_id", Type: field.TypeString, Unique: true},
		{Name: "speaker", Type: field.TypeString},
		{Name: "ts", Type: field.TypeTime},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "token_count", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "summarized_at", Type: field.TypeTime, Nullable: true},
		{Name: "meeting_id", Type: field.TypeString},
	}
	// SegmentsTable holds the schema information for the "segments" table.
	SegmentsTable = &schema.Table{
		Name:       "segments",
		Columns:    SegmentsColumns,
		PrimaryKey: []*schema.Column{SegmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "segments_meetings_segments",
				Columns:    []*schema.Column{SegmentsColumns[7]},
				RefColumns: []*schema.Column{MeetingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "segment_meeting_id_ts",
				Unique:  false,
				Columns: []*schema.Column{SegmentsColumns[7], SegmentsColumns[2]},
			},
			{
				Name:    "segment_meeting_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SegmentsColumns[7], SegmentsColumns[5]},
			},
			{
				Name:    "segment_meeting_id_summarized_at",
				Unique:  false,
				Columns: []*schema.Column{SegmentsColumns[7], SegmentsColumns[6]},
			},
		},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "summary_id", Type: field.TypeString, Unique: true},
		{Name: "summary_type", Type: field.TypeEnum, Enums: []string{"incremental", "final"}},
		{Name: "content", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "meeting_id", Type: field.TypeString},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "summaries_meetings_summaries",
				Columns:    []*schema.Column{SummariesColumns[4]},
				RefColumns: []*schema.Column{MeetingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "summary_meeting_id_summary_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{SummariesColumns[4], SummariesColumns[1], SummariesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobsTable,
		MeetingsTable,
		SegmentsTable,
		SummariesTable,
	}
)

func init() {
	JobsTable.ForeignKeys[0].RefTable = MeetingsTable
	SegmentsTable.ForeignKeys[0].RefTable = MeetingsTable
	SummariesTable.ForeignKeys[0].RefTable = MeetingsTable
}
