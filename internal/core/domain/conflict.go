package domain

// ConflictInfo describes a detected version mismatch. It exists only in
// flight between detection and resolution; nothing persists it.
type ConflictInfo struct {
	DisputeID        string   `json:"dispute_id"`
	LocalVersion     int64    `json:"local_version"`
	ServerVersion    int64    `json:"server_version"`
	ServerData       *Dispute `json:"server_data"`
	ConflictedFields []string `json:"conflicted_fields"`
}

// DiffFields lists the user-editable fields whose values differ between a
// local and a server copy of a dispute. Used to populate ConflictInfo for
// the advisory channel; resolution itself stays all-or-nothing.
func DiffFields(local, server *Dispute) []string {
	var fields []string
	if local.Status != server.Status {
		fields = append(fields, "status")
	}
	if local.Reason != server.Reason {
		fields = append(fields, "reason")
	}
	if local.Priority != server.Priority {
		fields = append(fields, "priority")
	}
	if local.Description != server.Description {
		fields = append(fields, "description")
	}
	if local.RequestedAmount != server.RequestedAmount {
		fields = append(fields, "requested_amount")
	}
	if local.ClaimedAmount != server.ClaimedAmount {
		fields = append(fields, "claimed_amount")
	}
	if !int64PtrEqual(local.ApprovedAmount, server.ApprovedAmount) {
		fields = append(fields, "approved_amount")
	}
	if len(local.Evidence) != len(server.Evidence) {
		fields = append(fields, "evidence")
	}
	if !actorPtrEqual(local.AssignedTo, server.AssignedTo) {
		fields = append(fields, "assigned_to")
	}
	if local.ResolutionNotes != server.ResolutionNotes {
		fields = append(fields, "resolution_notes")
	}
	return fields
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func actorPtrEqual(a, b *Actor) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
