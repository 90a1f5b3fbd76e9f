// Package app exposes the report query helpers as a small read-only HTTP
// service. Every request carries its own snapshot records; the session
// watcher is the service's only live input.
package app

import (
	"context"

	"parley/api/internal/localize"
	"parley/api/internal/policy"
	"parley/api/internal/report"
)

// sessionSource supplies the current signed-in email. session.Watcher
// implements it.
type sessionSource interface {
	Email() string
}

// pinger reports whether the backing store is reachable. kvstore.Store
// implements it.
type pinger interface {
	Ping(ctx context.Context) error
}

// Service answers classification, permission, ordering, and formatting
// queries over caller-supplied report snapshots.
type Service struct {
	store     pinger
	session   sessionSource
	formatter *report.Formatter
	locale    string
}

// New assembles the service around its collaborators.
func New(store pinger, session sessionSource, localizer *localize.Localizer) *Service {
	return &Service{
		store:     store,
		session:   session,
		formatter: report.NewFormatter(localizer),
		locale:    localizer.Locale(),
	}
}

// Ping reports whether the backing store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// SessionEmail returns the signed-in user's email, or the empty string
// when nobody is signed in.
func (s *Service) SessionEmail() string {
	return s.session.Email()
}

// Locale returns the locale display strings are produced in.
func (s *Service) Locale() string {
	return s.locale
}

// Classification is every category decision for one report.
type Classification struct {
	IsValid                 bool `json:"isValid"`
	IsDefaultRoom           bool `json:"isDefaultRoom"`
	IsAdminRoom             bool `json:"isAdminRoom"`
	IsAnnounceRoom          bool `json:"isAnnounceRoom"`
	IsUserCreatedPolicyRoom bool `json:"isUserCreatedPolicyRoom"`
	IsPolicyExpenseChat     bool `json:"isPolicyExpenseChat"`
	IsChatRoom              bool `json:"isChatRoom"`
	IsArchivedRoom          bool `json:"isArchivedRoom"`
	IsConciergeChat         bool `json:"isConciergeChat"`
	ChatIncludesConcierge   bool `json:"chatIncludesConcierge"`
}

// ClassifyReport evaluates every category predicate against one report.
func (s *Service) ClassifyReport(r *report.Report) Classification {
	return Classification{
		IsValid:                 report.IsValid(r),
		IsDefaultRoom:           report.IsDefaultRoom(r),
		IsAdminRoom:             report.IsAdminRoom(r),
		IsAnnounceRoom:          report.IsAnnounceRoom(r),
		IsUserCreatedPolicyRoom: report.IsUserCreatedPolicyRoom(r),
		IsPolicyExpenseChat:     report.IsPolicyExpenseChat(r),
		IsChatRoom:              report.IsChatRoom(r),
		IsArchivedRoom:          report.IsArchivedRoom(r),
		IsConciergeChat:         report.IsConciergeChat(r),
		ChatIncludesConcierge:   report.ChatIncludesConcierge(r),
	}
}

// ActionPermissions says what the signed-in user may do with one action.
type ActionPermissions struct {
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
	IsDeleted bool `json:"isDeleted"`
}

// PermissionsFor evaluates an action against the current session email.
func (s *Service) PermissionsFor(action *report.ReportAction) ActionPermissions {
	email := s.session.Email()
	return ActionPermissions{
		CanEdit:   report.CanEditAction(action, email),
		CanDelete: report.CanDeleteAction(action, email),
		IsDeleted: report.IsDeletedAction(action),
	}
}

// Subtitle formats the room subtitle for one report.
func (s *Service) Subtitle(r *report.Report, policies policy.Map) string {
	return s.formatter.ChatRoomSubtitle(r, policies)
}

// Welcome formats the room welcome banner for one report.
func (s *Service) Welcome(r *report.Report, policies policy.Map) report.WelcomeMessage {
	return s.formatter.RoomWelcomeMessage(r, policies)
}

// MostRecentlyVisited picks the report visited last, or nil when none
// qualifies.
func (s *Service) MostRecentlyVisited(reports []*report.Report, ignoreDefaultRooms bool) *report.Report {
	return report.MostRecentlyVisited(reports, ignoreDefaultRooms)
}

// CanShowRecipientLocalTime says whether the report's single recipient
// has a local time to display.
func (s *Service) CanShowRecipientLocalTime(details report.PersonalDetailsMap, r *report.Report) bool {
	return report.CanShowRecipientLocalTime(details, r)
}
