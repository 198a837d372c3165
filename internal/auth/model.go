package auth

// Customer is the domain entity. IsRegular is the loyalty flag the
// checkout discount policy consumes.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Password  string
	Role      string
	IsRegular bool
}
