package report

// AttachmentText is the sentinel message text of an attachment-only
// comment.
const AttachmentText = "[Attachment]"

// IsAttachmentText reports whether text is the attachment sentinel.
func IsAttachmentText(text string) bool {
	return text == AttachmentText
}

// firstMessageText returns the text of the action's first message part,
// defaulting to the empty string.
func firstMessageText(action *ReportAction) string {
	if action == nil || len(action.Message) == 0 {
		return ""
	}
	return action.Message[0].Text
}

// CanEditAction reports whether the session user may edit the action.
// Only confirmed ADDCOMMENT actions authored by the session user are
// editable, and attachments never are.
func CanEditAction(action *ReportAction, sessionEmail string) bool {
	if action == nil {
		return false
	}
	return action.ActorEmail == sessionEmail &&
		action.ReportActionID != "" &&
		action.ActionName == ActionAddComment &&
		!IsAttachmentText(firstMessageText(action))
}

// CanDeleteAction reports whether the session user may delete the
// action. Unlike editing, attachments are deletable.
func CanDeleteAction(action *ReportAction, sessionEmail string) bool {
	if action == nil {
		return false
	}
	return action.ActorEmail == sessionEmail &&
		action.ReportActionID != "" &&
		action.ActionName == ActionAddComment
}

// IsDeletedAction reports whether the action's comment has been removed:
// deletion clears the message list or blanks the first part's html.
func IsDeletedAction(action *ReportAction) bool {
	if action == nil || len(action.Message) == 0 {
		return true
	}
	return action.Message[0].HTML == ""
}
