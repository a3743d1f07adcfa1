package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table      string
	ID         string
	Username   string
	Email      string
	Password   string
	Nickname   string
	FirstName  string
	LastName   string
	Position   string
	Roles      string
	IsVerified string
	CreatedAt  string
	UpdatedAt  string
	DeletedAt  string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:      "users.account",
	ID:         "id",
	Username:   "username",
	Email:      "email",
	Password:   "passwordhash",
	Nickname:   "nickname",
	FirstName:  "firstname",
	LastName:   "lastname",
	Position:   "position",
	Roles:      "roles",
	IsVerified: "isverified",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
	DeletedAt:  "deletedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.Password, t.Nickname, t.FirstName,
		t.LastName, t.Position, t.Roles, t.IsVerified,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
