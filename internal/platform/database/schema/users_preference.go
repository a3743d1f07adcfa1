package schema

// UserPreferenceTable represents the 'users.preference' table
type UserPreferenceTable struct {
	Table        string
	UserID       string
	NameDisplay  string
	Timezone     string
	EmailNotify  string
	ShowUnread   string
	MilitaryTime string
	UpdatedAt    string
}

// UserPreference is the schema definition for users.preference
var UserPreference = UserPreferenceTable{
	Table:        "users.preference",
	UserID:       "userid",
	NameDisplay:  "namedisplay",
	Timezone:     "timezone",
	EmailNotify:  "emailnotify",
	ShowUnread:   "showunread",
	MilitaryTime: "militarytime",
	UpdatedAt:    "updatedat",
}

func (t UserPreferenceTable) Columns() []string {
	return []string{t.UserID, t.NameDisplay, t.Timezone, t.EmailNotify, t.ShowUnread, t.MilitaryTime, t.UpdatedAt}
}
