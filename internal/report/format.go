package report

import (
	"strings"

	"parley/api/internal/policy"
)

// maxLastMessageLength caps the preview text shown for a report's most
// recent message.
const maxLastMessageLength = 100

// Translator resolves a localization key to a display phrase, optionally
// substituting variables. localize.Localizer implements it.
type Translator interface {
	Translate(key string) string
	TranslateWith(key string, substitutions map[string]string) string
}

// WelcomeMessage is the two-phrase banner shown at the top of a room's
// history.
type WelcomeMessage struct {
	Phrase1 string `json:"phrase1"`
	Phrase2 string `json:"phrase2"`
}

// Formatter builds display strings for reports. Phrases come from the
// injected translator, workspace names from the caller-supplied policy
// map.
type Formatter struct {
	translator Translator
}

// NewFormatter returns a Formatter resolving phrases through translator.
func NewFormatter(translator Translator) *Formatter {
	return &Formatter{translator: translator}
}

// PolicyName resolves the workspace name behind a report, falling back
// to the localized unavailable-workspace label.
func (f *Formatter) PolicyName(r *Report, policies policy.Map) string {
	if r != nil {
		if p, ok := policies[policy.Key(r.PolicyID)]; ok && p.Name != "" {
			return p.Name
		}
	}
	return f.translator.Translate("workspace.unavailable")
}

// ChatRoomSubtitle returns the secondary line shown under a room's name.
// Reports that are neither rooms nor workspace chats have none.
func (f *Formatter) ChatRoomSubtitle(r *Report, policies policy.Map) string {
	if !IsDefaultRoom(r) && !IsUserCreatedPolicyRoom(r) && !IsPolicyExpenseChat(r) {
		return ""
	}
	if chatType(r) == ChatTypeDomainAll {
		// #domain.com rooms are named after the domain itself.
		return strings.TrimPrefix(r.ReportName, "#")
	}
	if IsArchivedRoom(r) {
		return r.OldPolicyName
	}
	if IsPolicyExpenseChat(r) && r.IsOwnPolicyExpenseChat {
		return f.translator.Translate("workspace.label")
	}
	return f.PolicyName(r, policies)
}

// RoomWelcomeMessage selects the banner phrases for a room. Admin and
// announce rooms mention their workspace by name; everything else gets
// the generic room pair.
func (f *Formatter) RoomWelcomeMessage(r *Report, policies policy.Map) WelcomeMessage {
	switch {
	case IsAdminRoom(r):
		subs := map[string]string{"workspaceName": f.PolicyName(r, policies)}
		return WelcomeMessage{
			Phrase1: f.translator.TranslateWith("roomWelcome.adminRoomPartOne", subs),
			Phrase2: f.translator.Translate("roomWelcome.adminRoomPartTwo"),
		}
	case IsAnnounceRoom(r):
		subs := map[string]string{"workspaceName": f.PolicyName(r, policies)}
		return WelcomeMessage{
			Phrase1: f.translator.TranslateWith("roomWelcome.announceRoomPartOne", subs),
			Phrase2: f.translator.Translate("roomWelcome.announceRoomPartTwo"),
		}
	default:
		return WelcomeMessage{
			Phrase1: f.translator.Translate("roomWelcome.userRoomPartOne"),
			Phrase2: f.translator.Translate("roomWelcome.userRoomPartTwo"),
		}
	}
}

// TruncateLastMessage caps message preview text at the fixed maximum
// number of characters, leaving shorter text untouched.
func TruncateLastMessage(text string) string {
	runes := []rune(text)
	if len(runes) <= maxLastMessageLength {
		return text
	}
	return string(runes[:maxLastMessageLength])
}
