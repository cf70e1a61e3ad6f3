package timesheet

import (
	"errors"
	"testing"

	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denyReason(t *testing.T, err error) DenyReason {
	t.Helper()
	var authErr *AuthorizationError
	require.True(t, errors.As(err, &authErr), "expected an AuthorizationError, got %v", err)
	return authErr.Reason
}

func TestCanEditPunches(t *testing.T) {
	manager := user.Principal{UserID: "u1", EmployeeID: "emp_mgr", Role: user.RoleManager}
	self := user.Principal{UserID: "u2", EmployeeID: "emp_001", Role: user.RoleEmployee}
	other := user.Principal{UserID: "u3", EmployeeID: "emp_002", Role: user.RoleEmployee}

	tests := []struct {
		name          string
		actor         user.Principal
		employeeID    string
		status        Status
		allowSelfEdit bool
		wantReason    DenyReason
	}{
		{
			name:       "manager edits any employee on a draft",
			actor:      manager,
			employeeID: "emp_001",
			status:     StatusDraft,
		},
		{
			name:       "manager edits on a pending timesheet",
			actor:      manager,
			employeeID: "emp_001",
			status:     StatusPending,
		},
		{
			name:       "approved blocks even a manager",
			actor:      manager,
			employeeID: "emp_001",
			status:     StatusApproved,
			wantReason: DenyStatusNotEditable,
		},
		{
			name:       "rejected blocks even a manager",
			actor:      manager,
			employeeID: "emp_001",
			status:     StatusRejected,
			wantReason: DenyStatusNotEditable,
		},
		{
			name:          "employee edits own entries when self-edit enabled",
			actor:         self,
			employeeID:    "emp_001",
			status:        StatusDraft,
			allowSelfEdit: true,
		},
		{
			name:       "employee blocked when self-edit disabled",
			actor:      self,
			employeeID: "emp_001",
			status:     StatusDraft,
			wantReason: DenySelfEditDisabled,
		},
		{
			name:          "employee never edits another employee",
			actor:         other,
			employeeID:    "emp_001",
			status:        StatusDraft,
			allowSelfEdit: true,
			wantReason:    DenyNotSelf,
		},
		{
			name:          "status gate fires before the self checks",
			actor:         self,
			employeeID:    "emp_001",
			status:        StatusApproved,
			allowSelfEdit: true,
			wantReason:    DenyStatusNotEditable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanEditPunches(tt.actor, tt.employeeID, tt.status, tt.allowSelfEdit)
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantReason, denyReason(t, err))
		})
	}
}

func TestCanReview(t *testing.T) {
	assert.NoError(t, CanReview(user.Principal{Role: user.RoleAdmin}))
	assert.NoError(t, CanReview(user.Principal{Role: user.RoleOwner}))
	assert.NoError(t, CanReview(user.Principal{Role: user.RoleManager}))

	err := CanReview(user.Principal{EmployeeID: "emp_001", Role: user.RoleEmployee})
	assert.Equal(t, DenyRoleInsufficient, denyReason(t, err))
}

func TestCanSubmit(t *testing.T) {
	self := user.Principal{EmployeeID: "emp_001", Role: user.RoleEmployee}

	assert.NoError(t, CanSubmit(self, "emp_001"))
	assert.NoError(t, CanSubmit(user.Principal{Role: user.RoleManager}, "emp_001"))

	err := CanSubmit(user.Principal{EmployeeID: "emp_002", Role: user.RoleEmployee}, "emp_001")
	assert.Equal(t, DenyNotSelf, denyReason(t, err))
}

func TestCanModifyPeriod(t *testing.T) {
	self := user.Principal{EmployeeID: "emp_001", Role: user.RoleEmployee}

	assert.NoError(t, CanModifyPeriod(self, "emp_001", StatusDraft))

	err := CanModifyPeriod(self, "emp_001", StatusPending)
	assert.Equal(t, DenyStatusNotEditable, denyReason(t, err))

	err = CanModifyPeriod(user.Principal{EmployeeID: "emp_002", Role: user.RoleEmployee}, "emp_001", StatusDraft)
	assert.Equal(t, DenyNotSelf, denyReason(t, err))
}

func TestCanView(t *testing.T) {
	assert.NoError(t, CanView(user.Principal{Role: user.RoleManager}, "emp_001"))
	assert.NoError(t, CanView(user.Principal{EmployeeID: "emp_001", Role: user.RoleEmployee}, "emp_001"))

	err := CanView(user.Principal{EmployeeID: "emp_002", Role: user.RoleEmployee}, "emp_001")
	assert.Equal(t, DenyRoleInsufficient, denyReason(t, err))
}
