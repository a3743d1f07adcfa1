package schema

// ChannelMemberTable represents the 'channels.member' table
type ChannelMemberTable struct {
	Table       string
	ChannelID   string
	UserID      string
	Roles       string
	SchemeUser  string
	SchemeAdmin string
	JoinedAt    string
	DeletedAt   string
}

// ChannelMember is the schema definition for channels.member
var ChannelMember = ChannelMemberTable{
	Table:       "channels.member",
	ChannelID:   "channelid",
	UserID:      "userid",
	Roles:       "roles",
	SchemeUser:  "schemeuser",
	SchemeAdmin: "schemeadmin",
	JoinedAt:    "joinedat",
	DeletedAt:   "deletedat",
}

func (t ChannelMemberTable) Columns() []string {
	return []string{t.ChannelID, t.UserID, t.Roles, t.SchemeUser, t.SchemeAdmin, t.JoinedAt, t.DeletedAt}
}
