package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"statusboard/pkg/logging"
)

// Status is the health of an environment.
type Status string

const (
	StatusOK     Status = "OK"
	StatusIssues Status = "ISSUES"
	StatusFreeze Status = "FREEZE"
	StatusDown   Status = "DOWN"
)

// Statuses is the fixed cycling order.
var Statuses = []Status{StatusOK, StatusIssues, StatusFreeze, StatusDown}

// Normalize upper-cases the status and maps blank to OK.
func (s Status) Normalize() Status {
	n := Status(strings.ToUpper(strings.TrimSpace(string(s))))
	if n == "" {
		return StatusOK
	}
	return n
}

// Next returns the status that follows s in Statuses, wrapping around.
// Unknown values cycle to the first status.
func (s Status) Next() Status {
	current := s.Normalize()
	idx := -1
	for i, candidate := range Statuses {
		if candidate == current {
			idx = i
			break
		}
	}
	return Statuses[(idx+1+len(Statuses))%len(Statuses)]
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// Role is the coarse capability tier of a user.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleViewer Role = "VIEWER"
)

// Roles lists the roles offered when registering.
var Roles = []Role{RoleViewer, RoleAdmin}

// UnassignedSolution is the group label for environments without a solution.
const UnassignedSolution = "UNASSIGNED"

// Environment is a named deployable target with a health status.
type Environment struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Status       Status  `json:"status"`
	SolutionName *string `json:"solutionName,omitempty"`
}

// Solution returns the trimmed solution label, or UnassignedSolution when absent or blank.
func (e Environment) Solution() string {
	if e.SolutionName == nil {
		return UnassignedSolution
	}
	trimmed := strings.TrimSpace(*e.SolutionName)
	if trimmed == "" {
		return UnassignedSolution
	}
	return trimmed
}

// Payload returns the full record used for PUT round trips.
func (e Environment) Payload() EnvironmentPayload {
	p := EnvironmentPayload{Name: e.Name, Status: e.Status.Normalize()}
	if e.SolutionName != nil {
		p.SolutionName = strings.TrimSpace(*e.SolutionName)
	}
	return p
}

// EnvironmentRef is the environment summary embedded in a post.
type EnvironmentRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Post is a status or incident note attached to one environment.
type Post struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	CreatedAt   *Timestamp      `json:"createdAt,omitempty"`
	CreatedBy   *string         `json:"createdBy,omitempty"`
	Environment *EnvironmentRef `json:"environment,omitempty"`
}

// Comment is a remark attached to one post.
type Comment struct {
	ID        int64      `json:"id"`
	Text      string     `json:"text"`
	Author    string     `json:"author"`
	CreatedAt *Timestamp `json:"createdAt,omitempty"`
}

// EnvironmentPayload is the body for environment create and update.
type EnvironmentPayload struct {
	Name         string `json:"name"`
	Status       Status `json:"status"`
	SolutionName string `json:"solutionName"`
}

// PostPayload is the body for post creation.
type PostPayload struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	EnvironmentID int64  `json:"environmentId"`
	CreatedBy     string `json:"createdBy"`
}

// CommentPayload is the body for comment creation.
type CommentPayload struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Identity is the client-asserted caller identity sent with mutating requests.
type Identity struct {
	Username string
	Role     Role
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Token    string `json:"token"`
}

// PostTypes are the post types offered by the post form.
var PostTypes = []string{"INFO", "INCIDENT", "MAINTENANCE", "RELEASE"}

// Timestamp accepts RFC3339, numeric offsets, zone-less local date-times,
// epoch milliseconds and Jackson-style [y,m,d,h,m,s,nanos] arrays.
// Values it cannot read decode as the zero time rather than failing the record.
type Timestamp struct {
	time.Time
}

var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

var offsetLayouts = []string{
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05-0700",
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}

	var parsed time.Time
	var err error
	switch raw[0] {
	case '"':
		var s string
		if err = json.Unmarshal(data, &s); err == nil {
			parsed, err = ParseTimestamp(s)
		}
	case '[':
		parsed, err = parseDateArray(data)
	default:
		var millis int64
		if millis, err = strconv.ParseInt(raw, 10, 64); err == nil {
			parsed = time.UnixMilli(millis)
		}
	}

	if err != nil {
		logging.Debug(apiSubsystem, "Ignoring unreadable timestamp %s: %v", raw, err)
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}

// parseDateArray reads [year, month, day, hour, minute, second, nanos] in local time.
// Trailing elements are optional.
func parseDateArray(data []byte) (time.Time, error) {
	var parts []int
	if err := json.Unmarshal(data, &parts); err != nil {
		return time.Time{}, err
	}
	if len(parts) < 3 || len(parts) > 7 {
		return time.Time{}, fmt.Errorf("date array needs 3 to 7 elements, got %d", len(parts))
	}
	fields := make([]int, 7)
	copy(fields, parts)
	return time.Date(fields[0], time.Month(fields[1]), fields[2], fields[3], fields[4], fields[5], fields[6], time.Local), nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// ParseTimestamp parses the date-time forms the backend emits. Zone-less values are local time.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return parsed, nil
	}
	for _, layout := range offsetLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	for _, layout := range zonelessLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", raw)
}
