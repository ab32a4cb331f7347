package recordstore

import (
	"slices"
	"time"
)

type FilterStatusString = string

/***** RecordFilter *****/

// RecordFilter is a store-agnostic description of a record scan, built with
// BuildRecordFilter and translated by concrete engines into their query
// language. It only expresses the combinations the engine needs:
//
//   - (status OR status...)
//   - (status... AND book)
//   - (status... AND user)
//   - (status... AND book AND user)
//   - (status... AND deadline < t)
type RecordFilter struct {
	statuses       []FilterStatusString
	bookID         string
	userID         string
	deadlineBefore *time.Time
}

// Statuses returns the status set; empty means any status.
func (f RecordFilter) Statuses() []FilterStatusString {
	return f.statuses
}

// BookID returns the book equality predicate; empty means any book.
func (f RecordFilter) BookID() string {
	return f.bookID
}

// UserID returns the user equality predicate; empty means any user.
func (f RecordFilter) UserID() string {
	return f.userID
}

// DeadlineBefore returns the upper bound on the record's deadline column
// (expiration_date for reservations, due_date for loans), or nil if unbounded.
func (f RecordFilter) DeadlineBefore() *time.Time {
	return f.deadlineBefore
}

/***** FilterBuilder *****/

// RecordFilterBuilder starts building a RecordFilter.
type RecordFilterBuilder interface {
	// Matching starts describing the scan.
	Matching() EmptyRecordFilterBuilder

	// MatchingAnyRecord directly creates an unrestricted filter.
	MatchingAnyRecord() RecordFilter
}

// EmptyRecordFilterBuilder requires at least one status predicate first;
// unbounded full-table scans outside the sweeper are never useful here.
type EmptyRecordFilterBuilder interface {
	// AnyStatusOf restricts the scan to records in any of the given statuses.
	//
	// It sanitizes the input:
	//	- removing empty statuses ("")
	//	- sorting the statuses
	//	- removing duplicate statuses
	AnyStatusOf(status FilterStatusString, statuses ...FilterStatusString) CompletableRecordFilterBuilder
}

// CompletableRecordFilterBuilder narrows the scan further or finalizes it.
type CompletableRecordFilterBuilder interface {
	// AndBook adds a book equality predicate.
	AndBook(bookID string) CompletableRecordFilterBuilder

	// AndUser adds a user equality predicate.
	AndUser(userID string) CompletableRecordFilterBuilder

	// AndDeadlineBefore bounds the record's deadline column (strictly before t).
	AndDeadlineBefore(t time.Time) CompletableRecordFilterBuilder

	// Finalize returns the RecordFilter.
	Finalize() RecordFilter
}

// recordFilterBuilder implements all the builder interfaces.
type recordFilterBuilder struct {
	filter RecordFilter
}

// BuildRecordFilter creates a RecordFilterBuilder which must eventually be
// finalized with Finalize() or MatchingAnyRecord().
func BuildRecordFilter() RecordFilterBuilder {
	return recordFilterBuilder{}
}

// Matching starts describing the scan.
func (fb recordFilterBuilder) Matching() EmptyRecordFilterBuilder {
	return fb
}

// MatchingAnyRecord directly creates an unrestricted filter.
func (fb recordFilterBuilder) MatchingAnyRecord() RecordFilter {
	return RecordFilter{}
}

// AnyStatusOf restricts the scan to records in any of the given statuses.
func (fb recordFilterBuilder) AnyStatusOf(
	status FilterStatusString,
	statuses ...FilterStatusString,
) CompletableRecordFilterBuilder {

	fb.filter.statuses = append(fb.filter.statuses, fb.sanitizeStatuses(status, statuses...)...)

	return fb
}

func (fb recordFilterBuilder) sanitizeStatuses(
	status FilterStatusString,
	statuses ...FilterStatusString,
) []FilterStatusString {

	allStatuses := append([]FilterStatusString{status}, statuses...)
	allStatuses = slices.DeleteFunc(
		allStatuses,
		func(s FilterStatusString) bool {
			return s == ""
		})
	slices.Sort(allStatuses)
	allStatuses = slices.Compact(allStatuses)
	allStatuses = slices.Clip(allStatuses)

	return allStatuses
}

// AndBook adds a book equality predicate.
func (fb recordFilterBuilder) AndBook(bookID string) CompletableRecordFilterBuilder {
	fb.filter.bookID = bookID
	return fb
}

// AndUser adds a user equality predicate.
func (fb recordFilterBuilder) AndUser(userID string) CompletableRecordFilterBuilder {
	fb.filter.userID = userID
	return fb
}

// AndDeadlineBefore bounds the record's deadline column (strictly before t).
func (fb recordFilterBuilder) AndDeadlineBefore(t time.Time) CompletableRecordFilterBuilder {
	bound := t
	fb.filter.deadlineBefore = &bound

	return fb
}

// Finalize returns the RecordFilter.
func (fb recordFilterBuilder) Finalize() RecordFilter {
	return fb.filter
}
