package schema

// TeamTable represents the 'teams.team' table
type TeamTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	IsOpen      string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// Team is the schema definition for teams.team
var Team = TeamTable{
	Table:       "teams.team",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	IsOpen:      "isopen",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

func (t TeamTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Description, t.IsOpen, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
