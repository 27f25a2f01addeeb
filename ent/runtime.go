// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/recapcrew/recap/ent/job"
	"github.com/recapcrew/recap/ent/meeting"
	"github.com/recapcrew/recap/ent/schema"
	"github.com/recapcrew/recap/ent/segment"
	"github.com/recapcrew/recap/ent/summary"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescJobType is the schema descriptor for job_type field.
	jobDescJobType := jobFields[2].Descriptor()
	// job.JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	job.JobTypeValidator = jobDescJobType.Validators[0].(func(string) error)
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[5].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// job.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	job.AttemptsValidator = jobDescAttempts.Validators[0].(func(int) error)
	// jobDescRunAfter is the schema descriptor for run_after field.
	jobDescRunAfter := jobFields[9].Descriptor()
	// job.DefaultRunAfter holds the default value on creation for the run_after field.
	job.DefaultRunAfter = jobDescRunAfter.Default.(func() time.Time)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[10].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[11].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	meetingFields := schema.Meeting{}.Fields()
	_ = meetingFields
	// meetingDescFinalized is the schema descriptor for finalized field.
	meetingDescFinalized := meetingFields[3].Descriptor()
	// meeting.DefaultFinalized holds the default value on creation for the finalized field.
	meeting.DefaultFinalized = meetingDescFinalized.Default.(bool)
	// meetingDescCreatedAt is the schema descriptor for created_at field.
	meetingDescCreatedAt := meetingFields[5].Descriptor()
	// meeting.DefaultCreatedAt holds the default value on creation for the created_at field.
	meeting.DefaultCreatedAt = meetingDescCreatedAt.Default.(func() time.Time)
	segmentFields := schema.Segment{}.Fields()
	_ = segmentFields
	// segmentDescTokenCount is the schema descriptor for token_count field.
	segmentDescTokenCount := segmentFields[5].Descriptor()
	// segment.TokenCountValidator is a validator for the "token_count" field. It is called by the builders before save.
	segment.TokenCountValidator = segmentDescTokenCount.Validators[0].(func(int) error)
	// segmentDescCreatedAt is the schema descriptor for created_at field.
	segmentDescCreatedAt := segmentFields[6].Descriptor()
	// segment.DefaultCreatedAt holds the default value on creation for the created_at field.
	segment.DefaultCreatedAt = segmentDescCreatedAt.Default.(func() time.Time)
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescCreatedAt is the schema descriptor for created_at field.
	summaryDescCreatedAt := summaryFields[4].Descriptor()
	// summary.DefaultCreatedAt holds the default value on creation for the created_at field.
	summary.DefaultCreatedAt = summaryDescCreatedAt.Default.(func() time.Time)
}
