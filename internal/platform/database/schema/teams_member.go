package schema

// TeamMemberTable represents the 'teams.member' table
type TeamMemberTable struct {
	Table       string
	TeamID      string
	UserID      string
	Roles       string
	SchemeUser  string
	SchemeAdmin string
	JoinedAt    string
	DeletedAt   string
}

// TeamMember is the schema definition for teams.member
var TeamMember = TeamMemberTable{
	Table:       "teams.member",
	TeamID:      "teamid",
	UserID:      "userid",
	Roles:       "roles",
	SchemeUser:  "schemeuser",
	SchemeAdmin: "schemeadmin",
	JoinedAt:    "joinedat",
	DeletedAt:   "deletedat",
}

func (t TeamMemberTable) Columns() []string {
	return []string{t.TeamID, t.UserID, t.Roles, t.SchemeUser, t.SchemeAdmin, t.JoinedAt, t.DeletedAt}
}
