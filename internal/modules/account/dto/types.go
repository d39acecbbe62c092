package dto

type SignUpInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type SignInInput struct {
	Email    string
	Password string
}

type SessionOutput struct {
	UserID   string
	Username string
	Email    string
	Name     string
	Avatar   string
	Bio      string
	JoinDate string
	Token    string
}

type UserOutput struct {
	ID       string
	Username string
	Email    string
	Name     string
	Avatar   string
	Bio      string
	JoinDate string
}
