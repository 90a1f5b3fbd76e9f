package report

// IsDefaultRoom reports whether the report is one of the three rooms
// every workspace gets automatically.
func IsDefaultRoom(r *Report) bool {
	switch chatType(r) {
	case ChatTypePolicyAdmins, ChatTypePolicyAnnounce, ChatTypeDomainAll:
		return true
	default:
		return false
	}
}

// IsAdminRoom reports whether the report is a workspace #admins room.
func IsAdminRoom(r *Report) bool {
	return chatType(r) == ChatTypePolicyAdmins
}

// IsAnnounceRoom reports whether the report is a workspace #announce room.
func IsAnnounceRoom(r *Report) bool {
	return chatType(r) == ChatTypePolicyAnnounce
}

// IsUserCreatedPolicyRoom reports whether the report is a room a member
// created inside a workspace.
func IsUserCreatedPolicyRoom(r *Report) bool {
	return chatType(r) == ChatTypePolicyRoom
}

// IsPolicyExpenseChat reports whether the report is a workspace expense
// chat.
func IsPolicyExpenseChat(r *Report) bool {
	return chatType(r) == ChatTypePolicyExpenseChat
}

// IsChatRoom reports whether the report is a named multi-party room,
// default or user-created.
func IsChatRoom(r *Report) bool {
	return IsUserCreatedPolicyRoom(r) || IsDefaultRoom(r)
}

// IsArchivedRoom reports whether a room or expense chat belongs to a
// workspace that has since been deleted. Plain chats are never archived.
func IsArchivedRoom(r *Report) bool {
	if !IsChatRoom(r) && !IsPolicyExpenseChat(r) {
		return false
	}
	return r.StatusNum == StatusClosed && r.StateNum == StateSubmitted
}
