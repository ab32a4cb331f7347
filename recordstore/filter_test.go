package recordstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unibiblio/circulation-engine-go/recordstore"
)

func Test_BuildRecordFilter_WithAllPredicates(t *testing.T) {
	// arrange
	deadline := time.Now()

	// act
	filter := recordstore.BuildRecordFilter().
		Matching().
		AnyStatusOf("Pending", "Approved").
		AndBook("book-1").
		AndUser("user-1").
		AndDeadlineBefore(deadline).
		Finalize()

	// assert
	assert.Equal(t, []string{"Approved", "Pending"}, filter.Statuses())
	assert.Equal(t, "book-1", filter.BookID())
	assert.Equal(t, "user-1", filter.UserID())
	require.NotNil(t, filter.DeadlineBefore())
	assert.Equal(t, deadline, *filter.DeadlineBefore())
}

func Test_BuildRecordFilter_SanitizesStatuses(t *testing.T) {
	// act - duplicates, empty strings, unsorted input
	filter := recordstore.BuildRecordFilter().
		Matching().
		AnyStatusOf("Pending", "", "Approved", "Pending", "Active", "").
		Finalize()

	// assert - empty removed, sorted, deduplicated
	assert.Equal(t, []string{"Active", "Approved", "Pending"}, filter.Statuses())
}

func Test_BuildRecordFilter_MatchingAnyRecord(t *testing.T) {
	filter := recordstore.BuildRecordFilter().MatchingAnyRecord()

	assert.Empty(t, filter.Statuses())
	assert.Empty(t, filter.BookID())
	assert.Empty(t, filter.UserID())
	assert.Nil(t, filter.DeadlineBefore())
}

func Test_BuildRecordFilter_StatusOnly(t *testing.T) {
	filter := recordstore.BuildRecordFilter().
		Matching().
		AnyStatusOf("Active").
		Finalize()

	assert.Equal(t, []string{"Active"}, filter.Statuses())
	assert.Empty(t, filter.BookID())
	assert.Nil(t, filter.DeadlineBefore())
}
