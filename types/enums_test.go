package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	assert.True(t, ValidPriority(PriorityCritical))
	assert.False(t, ValidPriority("urgent"))

	assert.True(t, ValidDeadlineStatus(DeadlineInProgress))
	assert.False(t, ValidDeadlineStatus("done"))

	assert.True(t, ValidDeadlineCategory("tax-compliance"))
	assert.False(t, ValidDeadlineCategory("misc"))

	assert.True(t, ValidDocumentType("nda"))
	assert.False(t, ValidDocumentType("memo"))

	assert.True(t, ValidTermComplexity("advanced"))
	assert.False(t, ValidTermComplexity("expert"))

	assert.True(t, ValidGlossarySort("complexity"))
	assert.False(t, ValidGlossarySort("relevance"))

	assert.True(t, ValidTermFrequency("common"))
	assert.False(t, ValidTermFrequency("constant"))

	assert.True(t, ValidRecurrenceFrequency("quarterly"))
	assert.False(t, ValidRecurrenceFrequency("fortnightly"))

	// Empty string is never a valid enum value.
	assert.False(t, ValidPriority(""))
	assert.False(t, ValidDeadlineStatus(""))
}

func TestIsTerminalDeadlineStatus(t *testing.T) {
	assert.True(t, IsTerminalDeadlineStatus(DeadlineCompleted))
	assert.True(t, IsTerminalDeadlineStatus(DeadlineCancelled))
	assert.False(t, IsTerminalDeadlineStatus(DeadlineOverdue))
	assert.False(t, IsTerminalDeadlineStatus(DeadlineUpcoming))
}

func TestIsHighPriority(t *testing.T) {
	assert.True(t, IsHighPriority(PriorityHigh))
	assert.True(t, IsHighPriority(PriorityCritical))
	assert.False(t, IsHighPriority(PriorityMedium))
	assert.False(t, IsHighPriority(PriorityLow))
}

func TestComplexityRank(t *testing.T) {
	assert.Less(t, ComplexityRank("basic"), ComplexityRank("intermediate"))
	assert.Less(t, ComplexityRank("intermediate"), ComplexityRank("advanced"))
	assert.Equal(t, 0, ComplexityRank("unknown"))
}
