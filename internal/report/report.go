// Package report answers classification, permission, ordering, and
// formatting questions about Parley report records. Every operation works
// on caller-supplied snapshots; the package keeps no state of its own.
package report

// ChatType marks a report as a multi-party named room or workspace chat.
// Reports without a chat type are plain 1:1 or ad-hoc group chats.
type ChatType string

const (
	ChatTypePolicyAdmins      ChatType = "policyAdmins"
	ChatTypePolicyAnnounce    ChatType = "policyAnnounce"
	ChatTypeDomainAll         ChatType = "domainAll"
	ChatTypePolicyRoom        ChatType = "policyRoom"
	ChatTypePolicyExpenseChat ChatType = "policyExpenseChat"
)

// Status is a report's workflow status ladder.
type Status int

const (
	StatusOpen      Status = 0
	StatusSubmitted Status = 1
	StatusClosed    Status = 2
	StatusApproved  Status = 3
)

// State is a report's processing state ladder.
type State int

const (
	StateOpen      State = 0
	StateSubmitted State = 1
	StateApproved  State = 2
)

// ActionName identifies the kind of a report action.
type ActionName string

// ActionAddComment is the only action kind users can edit or delete.
const ActionAddComment ActionName = "ADDCOMMENT"

// Report is a snapshot of one conversation/channel record.
type Report struct {
	ReportID               string   `json:"reportId"`
	ReportName             string   `json:"reportName,omitempty"`
	ChatType               ChatType `json:"chatType,omitempty"`
	PolicyID               string   `json:"policyId,omitempty"`
	IsOwnPolicyExpenseChat bool     `json:"isOwnPolicyExpenseChat,omitempty"`
	OldPolicyName          string   `json:"oldPolicyName,omitempty"`
	StatusNum              Status   `json:"statusNum"`
	StateNum               State    `json:"stateNum"`
	LastVisitedTimestamp   int64    `json:"lastVisitedTimestamp"`
	Participants           []string `json:"participants,omitempty"`
}

// MessagePart is one fragment of a report action's rendered message.
type MessagePart struct {
	HTML string `json:"html,omitempty"`
	Text string `json:"text,omitempty"`
}

// ReportAction is one event in a report's timeline. ReportActionID stays
// empty while the action is an unconfirmed local optimistic write.
type ReportAction struct {
	ReportActionID string        `json:"reportActionId,omitempty"`
	ActorEmail     string        `json:"actorEmail"`
	ActionName     ActionName    `json:"actionName"`
	Message        []MessagePart `json:"message,omitempty"`
}

// Timezone is a profile's elected timezone. Selected is false until the
// user has confirmed the zone should be shown to others.
type Timezone struct {
	Selected bool   `json:"selected"`
	Name     string `json:"name,omitempty"`
}

// DefaultTimezone is substituted when a profile carries no timezone
// record.
var DefaultTimezone = Timezone{Selected: false, Name: "UTC"}

// PersonalDetails is the profile Parley keeps per login.
type PersonalDetails struct {
	Login       string    `json:"login"`
	DisplayName string    `json:"displayName,omitempty"`
	Timezone    *Timezone `json:"timezone,omitempty"`
}

// PersonalDetailsMap indexes profiles by login.
type PersonalDetailsMap map[string]PersonalDetails

// IsValid reports whether a report may take part in sorting and
// selection: it must exist and carry a report ID.
func IsValid(r *Report) bool {
	return r != nil && r.ReportID != ""
}

// chatType reads a report's chat type; nil reports and reports without
// one yield the empty value, which matches no room kind.
func chatType(r *Report) ChatType {
	if r == nil {
		return ""
	}
	return r.ChatType
}
