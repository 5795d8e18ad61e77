package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAccess_PolicyTable(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		action   Action
		callerID string
		ownerID  string
		want     bool
	}{
		{"place read is public", KindPlace, ActionRead, "", "owner-1", true},
		{"place read by non-owner", KindPlace, ActionRead, "caller-1", "owner-1", true},

		{"place create by authenticated", KindPlace, ActionCreate, "caller-1", "", true},
		{"place create unauthenticated", KindPlace, ActionCreate, "", "", false},

		{"place update by owner", KindPlace, ActionUpdate, "owner-1", "owner-1", true},
		{"place update by non-owner", KindPlace, ActionUpdate, "caller-1", "owner-1", false},
		{"place update unauthenticated", KindPlace, ActionUpdate, "", "owner-1", false},

		{"place list all by authenticated", KindPlace, ActionListAll, "caller-1", "", true},
		{"place list all unauthenticated", KindPlace, ActionListAll, "", "", false},

		{"place list mine by owner", KindPlace, ActionListMine, "owner-1", "owner-1", true},
		{"place list mine by other", KindPlace, ActionListMine, "caller-1", "owner-1", false},

		{"booking create by authenticated", KindBooking, ActionCreate, "caller-1", "", true},
		{"booking create unauthenticated", KindBooking, ActionCreate, "", "", false},

		{"booking list mine by booker", KindBooking, ActionListMine, "user-1", "user-1", true},
		{"booking list mine by other", KindBooking, ActionListMine, "user-2", "user-1", false},

		{"booking update not in table", KindBooking, ActionUpdate, "user-1", "user-1", false},
		{"unknown kind", Kind("review"), ActionRead, "user-1", "user-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAccess(tt.kind, tt.action, tt.callerID, tt.ownerID)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Empty owner and empty caller must never combine into an ownership match.
func TestCanAccess_EmptyIdentitiesNeverOwn(t *testing.T) {
	assert.False(t, CanAccess(KindPlace, ActionUpdate, "", ""))
	assert.False(t, CanAccess(KindBooking, ActionListMine, "", ""))
}
