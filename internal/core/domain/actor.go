package domain

// Role is the coarse-grained role of a user working disputes.
type Role string

const (
	RoleSupportAgent Role = "support_agent"
	RoleRiskAnalyst  Role = "risk_analyst"
	RoleFinanceOps   Role = "finance_ops"
	RoleAdmin        Role = "admin"
)

// Capability is a named fine-grained permission, checked independently of the
// coarse role gate.
type Capability string

const (
	CapViewTransactions Capability = "view_transactions"
	CapViewMaskedData   Capability = "view_masked_data"
	CapViewFullData     Capability = "view_full_data"
	CapCreateDispute    Capability = "create_dispute"
	CapEditDispute      Capability = "edit_dispute"
	CapDeleteDispute    Capability = "delete_dispute"
	CapAssignDispute    Capability = "assign_dispute"
	CapReviewDispute    Capability = "review_dispute"
	CapApproveDispute   Capability = "approve_dispute"
	CapRejectDispute    Capability = "reject_dispute"
	CapSettleDispute    Capability = "settle_dispute"
	CapAdjustAmount     Capability = "adjust_amount"
	CapViewAuditLog     Capability = "view_audit_log"
	CapExportData       Capability = "export_data"
	CapManageUsers      Capability = "manage_users"
)

// Actor identifies who performs an operation. Every mutating call takes an
// explicit Actor; nothing is derived from ambient context.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// rolePermissions is the static role -> capability-set table. The engine
// trusts it as given and never re-derives permissions.
var rolePermissions = map[Role][]Capability{
	RoleSupportAgent: {
		CapViewTransactions,
		CapViewMaskedData,
		CapCreateDispute,
		CapEditDispute,
		CapViewAuditLog,
	},
	RoleRiskAnalyst: {
		CapViewTransactions,
		CapViewMaskedData,
		CapViewFullData,
		CapCreateDispute,
		CapEditDispute,
		CapAssignDispute,
		CapReviewDispute,
		CapApproveDispute,
		CapRejectDispute,
		CapViewAuditLog,
	},
	RoleFinanceOps: {
		CapViewTransactions,
		CapViewFullData,
		CapCreateDispute,
		CapEditDispute,
		CapReviewDispute,
		CapApproveDispute,
		CapRejectDispute,
		CapSettleDispute,
		CapAdjustAmount,
		CapViewAuditLog,
		CapExportData,
	},
	RoleAdmin: {
		CapViewTransactions,
		CapViewFullData,
		CapCreateDispute,
		CapEditDispute,
		CapDeleteDispute,
		CapAssignDispute,
		CapReviewDispute,
		CapApproveDispute,
		CapRejectDispute,
		CapSettleDispute,
		CapAdjustAmount,
		CapViewAuditLog,
		CapExportData,
		CapManageUsers,
	},
}

// HasCapability reports whether a role holds the given capability. Pure
// lookup over the static table.
func HasCapability(role Role, cap Capability) bool {
	for _, c := range rolePermissions[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// Capabilities returns a copy of the capability set for a role.
func Capabilities(role Role) []Capability {
	caps := rolePermissions[role]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}
