package entities

type AccountType string

const (
	AccountTypeUser      AccountType = "user"
	AccountTypeOrganizer AccountType = "organizer"
	AccountTypeAdmin     AccountType = "admin"
)

func ParseAccountType(raw string) (AccountType, bool) {
	switch AccountType(raw) {
	case AccountTypeUser, AccountTypeOrganizer, AccountTypeAdmin:
		return AccountType(raw), true
	default:
		return "", false
	}
}

// Account is a registered user of the listing platform. PasswordHash holds a
// bcrypt digest, never the raw credential.
type Account struct {
	ID            int64
	Email         string
	Name          string
	PasswordHash  string
	PhoneNumber   string
	ProfileImage  string
	AccountType   AccountType
	ActiveAccount bool
}
