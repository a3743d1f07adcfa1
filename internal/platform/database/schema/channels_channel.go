package schema

// ChannelTable represents the 'channels.channel' table
type ChannelTable struct {
	Table       string
	ID          string
	TeamID      string
	Name        string
	Slug        string
	Topic       string
	Type        string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// Channel is the schema definition for channels.channel
var Channel = ChannelTable{
	Table:     "channels.channel",
	ID:        "id",
	TeamID:    "teamid",
	Name:      "name",
	Slug:      "slug",
	Topic:     "topic",
	Type:      "type",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

func (t ChannelTable) Columns() []string {
	return []string{t.ID, t.TeamID, t.Name, t.Slug, t.Topic, t.Type, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
