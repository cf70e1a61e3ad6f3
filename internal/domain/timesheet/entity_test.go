package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusPending, true},
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},

		{StatusDraft, StatusApproved, false},
		{StatusDraft, StatusRejected, false},
		{StatusDraft, StatusDraft, false},
		{StatusPending, StatusDraft, false},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusDraft.Editable())
	assert.True(t, StatusPending.Editable())
	assert.False(t, StatusApproved.Editable())
	assert.False(t, StatusRejected.Editable())

	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusDraft.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())

	assert.True(t, StatusDraft.IsValid())
	assert.False(t, Status("archived").IsValid())
}

func TestTimesheetCovers(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	ts := Timesheet{PeriodStart: start, PeriodEnd: end}

	assert.True(t, ts.Covers(start))
	assert.True(t, ts.Covers(end))
	assert.True(t, ts.Covers(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ts.Covers(start.AddDate(0, 0, -1)))
	assert.False(t, ts.Covers(end.AddDate(0, 0, 1)))
}

func TestChangeStatusRequestValidate(t *testing.T) {
	comment := "hours do not match the schedule"

	valid := ChangeStatusRequest{Status: "approved"}
	assert.NoError(t, valid.Validate())

	rejectWithComment := ChangeStatusRequest{Status: "rejected", ReviewComment: &comment}
	assert.NoError(t, rejectWithComment.Validate())

	rejectWithout := ChangeStatusRequest{Status: "rejected"}
	assert.Error(t, rejectWithout.Validate())

	unknown := ChangeStatusRequest{Status: "archived"}
	assert.Error(t, unknown.Validate())
}
