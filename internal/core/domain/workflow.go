package domain

// Transition describes the allowed next states from a given status and the
// coarse role gate for leaving it.
type Transition struct {
	NextStatuses []DisputeStatus
	AllowedRoles []Role
}

// statusTransitions is the per-state transition table. The rejected ->
// under_review reopen edge keeps the stricter admin-only coarse gate; like
// every other edge it additionally requires the capability bound to the
// target status.
var statusTransitions = map[DisputeStatus]Transition{
	DisputeStatusDraft: {
		NextStatuses: []DisputeStatus{DisputeStatusCreated},
		AllowedRoles: []Role{RoleSupportAgent, RoleRiskAnalyst, RoleFinanceOps, RoleAdmin},
	},
	DisputeStatusCreated: {
		NextStatuses: []DisputeStatus{DisputeStatusUnderReview},
		AllowedRoles: []Role{RoleRiskAnalyst, RoleFinanceOps, RoleAdmin},
	},
	DisputeStatusUnderReview: {
		NextStatuses: []DisputeStatus{DisputeStatusApproved, DisputeStatusRejected},
		AllowedRoles: []Role{RoleRiskAnalyst, RoleFinanceOps, RoleAdmin},
	},
	DisputeStatusApproved: {
		NextStatuses: []DisputeStatus{DisputeStatusSettled},
		AllowedRoles: []Role{RoleFinanceOps, RoleAdmin},
	},
	DisputeStatusRejected: {
		NextStatuses: []DisputeStatus{DisputeStatusUnderReview},
		AllowedRoles: []Role{RoleAdmin},
	},
	DisputeStatusSettled: {}, // terminal
}

// transitionCapabilities binds a fine-grained capability to each target
// status. Targets absent from this map need no capability beyond the role
// gate.
var transitionCapabilities = map[DisputeStatus]Capability{
	DisputeStatusUnderReview: CapReviewDispute,
	DisputeStatusApproved:    CapApproveDispute,
	DisputeStatusRejected:    CapRejectDispute,
	DisputeStatusSettled:     CapSettleDispute,
}

// TransitionCapability returns the capability bound to a target status, if
// any.
func TransitionCapability(to DisputeStatus) (Capability, bool) {
	c, ok := transitionCapabilities[to]
	return c, ok
}

// TransitionEdgeExists reports whether the transition table contains the
// from -> to edge, ignoring who is asking.
func TransitionEdgeExists(from, to DisputeStatus) bool {
	for _, next := range statusTransitions[from].NextStatuses {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransition reports whether the actor may move a dispute from one status
// to another. All three clauses must hold: the edge exists, the actor's role
// passes the coarse gate, and the actor holds the capability bound to the
// target.
func CanTransition(from, to DisputeStatus, actor Actor) bool {
	t, ok := statusTransitions[from]
	if !ok {
		return false
	}

	edge := false
	for _, next := range t.NextStatuses {
		if next == to {
			edge = true
			break
		}
	}
	if !edge {
		return false
	}

	roleAllowed := false
	for _, r := range t.AllowedRoles {
		if r == actor.Role {
			roleAllowed = true
			break
		}
	}
	if !roleAllowed {
		return false
	}

	if cap, bound := transitionCapabilities[to]; bound {
		return HasCapability(actor.Role, cap)
	}
	return true
}

// AvailableTransitions returns the target statuses the actor can currently
// reach from the given status.
func AvailableTransitions(from DisputeStatus, actor Actor) []DisputeStatus {
	var out []DisputeStatus
	for _, to := range statusTransitions[from].NextStatuses {
		if CanTransition(from, to, actor) {
			out = append(out, to)
		}
	}
	return out
}
