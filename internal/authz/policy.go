// Package authz centralizes the ownership policy consulted by every
// place and booking operation. Handlers never re-derive ownership rules
// inline; they ask CanAccess with the verified caller identity.
package authz

// Kind identifies the resource class a rule applies to.
type Kind string

const (
	KindPlace   Kind = "place"
	KindBooking Kind = "booking"
)

// Action identifies the operation being attempted.
type Action string

const (
	ActionRead     Action = "read"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionListAll  Action = "list_all"
	ActionListMine Action = "list_mine"
)

type rule func(callerID, ownerID string) bool

func anyone(_, _ string) bool {
	return true
}

func anyAuthenticated(callerID, _ string) bool {
	return callerID != ""
}

func ownerOnly(callerID, ownerID string) bool {
	return callerID != "" && callerID == ownerID
}

// policy is the full access table. A (kind, action) pair absent from the
// table is denied.
var policy = map[Kind]map[Action]rule{
	KindPlace: {
		ActionRead:     anyone,
		ActionCreate:   anyAuthenticated,
		ActionUpdate:   ownerOnly,
		ActionListAll:  anyAuthenticated,
		ActionListMine: ownerOnly,
	},
	KindBooking: {
		ActionCreate:   anyAuthenticated,
		ActionListMine: ownerOnly,
	},
}

// CanAccess decides whether the caller may perform action on a resource
// of the given kind owned by ownerID. callerID is empty for
// unauthenticated requests. Pure function, no I/O.
func CanAccess(kind Kind, action Action, callerID, ownerID string) bool {
	actions, ok := policy[kind]
	if !ok {
		return false
	}
	r, ok := actions[action]
	if !ok {
		return false
	}
	return r(callerID, ownerID)
}
