package report

import (
	"strings"
	"testing"

	"parley/api/internal/policy"
)

type fakeTranslator struct {
	phrases map[string]string
}

func (f *fakeTranslator) Translate(key string) string {
	if phrase, ok := f.phrases[key]; ok {
		return phrase
	}
	return key
}

func (f *fakeTranslator) TranslateWith(key string, substitutions map[string]string) string {
	phrase := f.Translate(key)
	for token, value := range substitutions {
		phrase = strings.ReplaceAll(phrase, "{"+token+"}", value)
	}
	return phrase
}

func newTestFormatter() *Formatter {
	return NewFormatter(&fakeTranslator{phrases: map[string]string{
		"workspace.label":                 "Workspace",
		"workspace.unavailable":           "Unavailable workspace",
		"roomWelcome.adminRoomPartOne":    "Admins of {workspaceName} coordinate here.",
		"roomWelcome.adminRoomPartTwo":    "Use it for workspace setup questions.",
		"roomWelcome.announceRoomPartOne": "Announcements for everyone in {workspaceName}.",
		"roomWelcome.announceRoomPartTwo": "Only admins can post.",
		"roomWelcome.userRoomPartOne":     "This is the beginning of the room.",
		"roomWelcome.userRoomPartTwo":     "Invite anyone from your workspace.",
	}})
}

func testPolicies() policy.Map {
	return policy.Map{
		policy.Key("pol-1"): {ID: "pol-1", Name: "Acme Corp"},
		policy.Key("pol-2"): {ID: "pol-2", Name: ""},
	}
}

func TestPolicyName(t *testing.T) {
	f := newTestFormatter()
	policies := testPolicies()

	cases := []struct {
		name   string
		report *Report
		want   string
	}{
		{
			name:   "known policy",
			report: &Report{ReportID: "1", PolicyID: "pol-1"},
			want:   "Acme Corp",
		},
		{
			name:   "missing policy",
			report: &Report{ReportID: "2", PolicyID: "pol-9"},
			want:   "Unavailable workspace",
		},
		{
			name:   "policy with empty name",
			report: &Report{ReportID: "3", PolicyID: "pol-2"},
			want:   "Unavailable workspace",
		},
		{
			name:   "nil report",
			report: nil,
			want:   "Unavailable workspace",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.PolicyName(tc.report, policies); got != tc.want {
				t.Fatalf("PolicyName() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestChatRoomSubtitle(t *testing.T) {
	f := newTestFormatter()
	policies := testPolicies()

	cases := []struct {
		name   string
		report *Report
		want   string
	}{
		{
			name:   "domain room named after domain",
			report: &Report{ReportID: "1", ChatType: ChatTypeDomainAll, ReportName: "#acme.com", PolicyID: "pol-1"},
			want:   "acme.com",
		},
		{
			name:   "domain room keeps name casing",
			report: &Report{ReportID: "1b", ChatType: ChatTypeDomainAll, ReportName: "#Acme"},
			want:   "Acme",
		},
		{
			name: "archived room shows old workspace name",
			report: &Report{
				ReportID:      "2",
				ChatType:      ChatTypePolicyRoom,
				PolicyID:      "pol-1",
				OldPolicyName: "Acme Corp (archived)",
				StatusNum:     StatusClosed,
				StateNum:      StateSubmitted,
			},
			want: "Acme Corp (archived)",
		},
		{
			name: "own expense chat",
			report: &Report{
				ReportID:               "3",
				ChatType:               ChatTypePolicyExpenseChat,
				PolicyID:               "pol-1",
				IsOwnPolicyExpenseChat: true,
			},
			want: "Workspace",
		},
		{
			name:   "someone else's expense chat",
			report: &Report{ReportID: "4", ChatType: ChatTypePolicyExpenseChat, PolicyID: "pol-1"},
			want:   "Acme Corp",
		},
		{
			name:   "user created room",
			report: &Report{ReportID: "5", ChatType: ChatTypePolicyRoom, PolicyID: "pol-1"},
			want:   "Acme Corp",
		},
		{
			name:   "admins room",
			report: &Report{ReportID: "6", ChatType: ChatTypePolicyAdmins, PolicyID: "pol-1"},
			want:   "Acme Corp",
		},
		{
			name:   "room whose workspace is gone",
			report: &Report{ReportID: "7", ChatType: ChatTypePolicyRoom, PolicyID: "pol-9"},
			want:   "Unavailable workspace",
		},
		{
			name:   "plain chat has no subtitle",
			report: &Report{ReportID: "8", Participants: []string{"avery@acme.com"}},
			want:   "",
		},
		{
			name:   "nil report",
			report: nil,
			want:   "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.ChatRoomSubtitle(tc.report, policies); got != tc.want {
				t.Fatalf("ChatRoomSubtitle() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRoomWelcomeMessage(t *testing.T) {
	f := newTestFormatter()
	policies := testPolicies()

	cases := []struct {
		name        string
		report      *Report
		wantPhrase1 string
		wantPhrase2 string
	}{
		{
			name:        "admins room mentions workspace",
			report:      &Report{ReportID: "1", ChatType: ChatTypePolicyAdmins, PolicyID: "pol-1"},
			wantPhrase1: "Admins of Acme Corp coordinate here.",
			wantPhrase2: "Use it for workspace setup questions.",
		},
		{
			name:        "announce room mentions workspace",
			report:      &Report{ReportID: "2", ChatType: ChatTypePolicyAnnounce, PolicyID: "pol-1"},
			wantPhrase1: "Announcements for everyone in Acme Corp.",
			wantPhrase2: "Only admins can post.",
		},
		{
			name:        "admins room with missing workspace",
			report:      &Report{ReportID: "3", ChatType: ChatTypePolicyAdmins, PolicyID: "pol-9"},
			wantPhrase1: "Admins of Unavailable workspace coordinate here.",
			wantPhrase2: "Use it for workspace setup questions.",
		},
		{
			name:        "user created room",
			report:      &Report{ReportID: "4", ChatType: ChatTypePolicyRoom, PolicyID: "pol-1"},
			wantPhrase1: "This is the beginning of the room.",
			wantPhrase2: "Invite anyone from your workspace.",
		},
		{
			name:        "domain room",
			report:      &Report{ReportID: "5", ChatType: ChatTypeDomainAll},
			wantPhrase1: "This is the beginning of the room.",
			wantPhrase2: "Invite anyone from your workspace.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := f.RoomWelcomeMessage(tc.report, policies)
			if got.Phrase1 != tc.wantPhrase1 {
				t.Errorf("Phrase1 = %q, want %q", got.Phrase1, tc.wantPhrase1)
			}
			if got.Phrase2 != tc.wantPhrase2 {
				t.Errorf("Phrase2 = %q, want %q", got.Phrase2, tc.wantPhrase2)
			}
		})
	}
}

func TestTruncateLastMessage(t *testing.T) {
	short := "hello"
	if got := TruncateLastMessage(short); got != short {
		t.Fatalf("TruncateLastMessage(%q) = %q, want unchanged", short, got)
	}

	exact := strings.Repeat("a", maxLastMessageLength)
	if got := TruncateLastMessage(exact); got != exact {
		t.Fatalf("expected text at the limit to be unchanged")
	}

	long := strings.Repeat("a", maxLastMessageLength+25)
	got := TruncateLastMessage(long)
	if len([]rune(got)) != maxLastMessageLength {
		t.Fatalf("expected %d characters, got %d", maxLastMessageLength, len([]rune(got)))
	}

	wide := strings.Repeat("é", maxLastMessageLength+10)
	got = TruncateLastMessage(wide)
	if n := len([]rune(got)); n != maxLastMessageLength {
		t.Fatalf("expected %d characters for multibyte text, got %d", maxLastMessageLength, n)
	}
	if !strings.HasPrefix(wide, got) {
		t.Fatalf("expected truncation to keep a clean prefix")
	}

	if got := TruncateLastMessage(""); got != "" {
		t.Fatalf("TruncateLastMessage(\"\") = %q, want empty", got)
	}
}
