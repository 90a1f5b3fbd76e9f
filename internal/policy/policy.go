// Package policy carries the workspace policy metadata callers hand to
// the report formatters. The map is read-only here; Parley's policy
// service owns the records.
package policy

const keyPrefix = "policy_"

// Policy is the metadata kept per workspace policy.
type Policy struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Map indexes policies by their store key (see Key).
type Map map[string]Policy

// Key builds the store key under which a policy is filed.
func Key(policyID string) string {
	return keyPrefix + policyID
}
