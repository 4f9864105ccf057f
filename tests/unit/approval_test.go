package unit_test

import (
	"testing"
	"time"

	"amlak-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproval_Approve(t *testing.T) {
	approver := domain.UserRef{ID: uuid.New(), Name: "Layla Hassan"}
	now := time.Now()

	t.Run("RecordsDecision", func(t *testing.T) {
		var a domain.Approval

		err := a.Approve(approver, stringPtr("looks good"), now)

		require.NoError(t, err)
		assert.True(t, a.IsApproved)
		require.NotNil(t, a.ApprovalDate)
		assert.Equal(t, now, *a.ApprovalDate)
		assert.Equal(t, approver.ID, *a.ApproverID)
		assert.Equal(t, "Layla Hassan", *a.ApproverName)
		assert.Equal(t, "looks good", *a.Notes)
	})

	t.Run("ApproveIsTerminal", func(t *testing.T) {
		var a domain.Approval
		require.NoError(t, a.Approve(approver, nil, now))

		other := domain.UserRef{ID: uuid.New(), Name: "Omar Saleh"}
		err := a.Approve(other, nil, now.Add(time.Hour))

		assert.ErrorIs(t, err, domain.ErrAlreadyApproved)
		assert.Equal(t, approver.ID, *a.ApproverID)
		assert.Equal(t, now, *a.ApprovalDate)
	})

	t.Run("RejectAfterApproveFails", func(t *testing.T) {
		var a domain.Approval
		require.NoError(t, a.Approve(approver, nil, now))

		err := a.Reject(approver, stringPtr("changed my mind"))

		assert.ErrorIs(t, err, domain.ErrAlreadyApproved)
		assert.True(t, a.IsApproved)
	})
}

func TestApproval_Reject(t *testing.T) {
	reviewer := domain.UserRef{ID: uuid.New(), Name: "Layla Hassan"}

	t.Run("StaysUndecided", func(t *testing.T) {
		var a domain.Approval

		err := a.Reject(reviewer, stringPtr("missing invoice"))

		require.NoError(t, err)
		assert.False(t, a.IsApproved)
		assert.Nil(t, a.ApprovalDate)
		assert.Equal(t, "missing invoice", *a.Notes)
		assert.Equal(t, reviewer.ID, *a.ApproverID)
	})

	t.Run("RejectIsRepeatable", func(t *testing.T) {
		var a domain.Approval
		require.NoError(t, a.Reject(reviewer, stringPtr("first pass")))
		require.NoError(t, a.Reject(reviewer, stringPtr("second pass")))

		assert.False(t, a.IsApproved)
		assert.Equal(t, "second pass", *a.Notes)
	})

	t.Run("ApproveAfterRejectSucceeds", func(t *testing.T) {
		var a domain.Approval
		require.NoError(t, a.Reject(reviewer, stringPtr("fix the quantities")))

		err := a.Approve(reviewer, nil, time.Now())

		require.NoError(t, err)
		assert.True(t, a.IsApproved)
	})
}

func TestIsTransitionAllowed(t *testing.T) {
	statuses := []domain.RequestStatus{
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusCompleted,
	}

	t.Run("AnyValidPairIsAllowed", func(t *testing.T) {
		for _, from := range statuses {
			for _, to := range statuses {
				assert.True(t, domain.IsTransitionAllowed(from, to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("PendingStraightToCompleted", func(t *testing.T) {
		assert.True(t, domain.IsTransitionAllowed(domain.StatusPending, domain.StatusCompleted))
	})

	t.Run("UnknownStatusRefused", func(t *testing.T) {
		assert.False(t, domain.IsTransitionAllowed(domain.StatusPending, "archived"))
		assert.False(t, domain.IsTransitionAllowed("archived", domain.StatusPending))
	})
}

func TestApprovalType(t *testing.T) {
	t.Run("RequiredCapability", func(t *testing.T) {
		assert.Equal(t, domain.CapApproveManager, domain.ApprovalManager.RequiredCapability())
		assert.Equal(t, domain.CapApproveSupervisor, domain.ApprovalSupervisor.RequiredCapability())
	})

	t.Run("Validity", func(t *testing.T) {
		assert.True(t, domain.ApprovalManager.IsValid())
		assert.True(t, domain.ApprovalSupervisor.IsValid())
		assert.False(t, domain.ApprovalType("owner").IsValid())
	})
}

func TestHasCapability(t *testing.T) {
	t.Run("ManagerApprovalSlot", func(t *testing.T) {
		assert.True(t, domain.HasCapability(domain.RoleAdmin, domain.CapApproveManager))
		assert.True(t, domain.HasCapability(domain.RoleManager, domain.CapApproveManager))
		assert.False(t, domain.HasCapability(domain.RoleSupervisor, domain.CapApproveManager))
		assert.False(t, domain.HasCapability(domain.RoleUser, domain.CapApproveManager))
	})

	t.Run("SupervisorApprovalSlot", func(t *testing.T) {
		assert.True(t, domain.HasCapability(domain.RoleAdmin, domain.CapApproveSupervisor))
		assert.True(t, domain.HasCapability(domain.RoleSupervisor, domain.CapApproveSupervisor))
		assert.False(t, domain.HasCapability(domain.RoleManager, domain.CapApproveSupervisor))
	})

	t.Run("UnknownCapabilityDenied", func(t *testing.T) {
		assert.False(t, domain.HasCapability(domain.RoleAdmin, "launch_rockets"))
	})
}
