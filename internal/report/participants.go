package report

import "strings"

const (
	// SMSDomain is appended to phone-number logins provisioned over SMS.
	SMSDomain = "@parley.sms"

	// ConciergeEmail is the reserved login of Parley's automated support
	// participant.
	ConciergeEmail = "concierge@parley.im"
)

// systemEmails are reserved logins that represent Parley itself rather
// than a person.
var systemEmails = map[string]struct{}{
	ConciergeEmail:            {},
	"notifications@parley.im": {},
	"receipts@parley.im":      {},
}

// DisplayLogin returns the form of a login shown in the UI: phone-number
// logins lose the SMS domain suffix.
func DisplayLogin(login string) string {
	return strings.TrimSuffix(login, SMSDomain)
}

// ParticipantsTitle joins the display form of each login with ", ".
func ParticipantsTitle(logins []string) string {
	if len(logins) == 0 {
		return ""
	}
	display := make([]string, len(logins))
	for i, login := range logins {
		display[i] = DisplayLogin(login)
	}
	return strings.Join(display, ", ")
}

// IsConciergeChat reports whether the report is the 1:1 chat with
// Concierge.
func IsConciergeChat(r *Report) bool {
	return r != nil && len(r.Participants) == 1 && r.Participants[0] == ConciergeEmail
}

// ChatIncludesConcierge reports whether Concierge is among the report's
// participants.
func ChatIncludesConcierge(r *Report) bool {
	if r == nil {
		return false
	}
	for _, login := range r.Participants {
		if login == ConciergeEmail {
			return true
		}
	}
	return false
}

// HasSystemParticipant reports whether any of the emails is a reserved
// Parley system login.
func HasSystemParticipant(emails []string) bool {
	for _, email := range emails {
		if _, ok := systemEmails[email]; ok {
			return true
		}
	}
	return false
}

// TimezoneOf returns the timezone elected by a login, substituting
// DefaultTimezone when the profile is missing or carries none.
func TimezoneOf(details PersonalDetailsMap, login string) Timezone {
	if detail, ok := details[login]; ok && detail.Timezone != nil {
		return *detail.Timezone
	}
	return DefaultTimezone
}

// CanShowRecipientLocalTime reports whether the report's single
// recipient has a profile with an elected timezone to display. Group
// chats and chats with system participants never show one.
func CanShowRecipientLocalTime(details PersonalDetailsMap, r *Report) bool {
	if r == nil || len(r.Participants) != 1 {
		return false
	}
	if HasSystemParticipant(r.Participants) {
		return false
	}
	login := r.Participants[0]
	if _, ok := details[login]; !ok {
		return false
	}
	return TimezoneOf(details, login).Selected
}
