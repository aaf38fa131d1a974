package domain

type Client struct {
	ID    int
	Name  string
	Phone string
}

type Address struct {
	ID           int
	ClientID     int
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	Complement   *string
	Reference    *string
	Nickname     string
}
