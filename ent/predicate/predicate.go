// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Meeting is the predicate function for meeting builders.
type Meeting func(*sql.Selector)

// Segment is the predicate function for segment builders.
type Segment func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)
