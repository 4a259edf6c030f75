// Package navigation holds the client routes, the role-based link sets and
// the Navigator abstraction used to move the user between pages.
package navigation

import "github.com/skybook/skybook-web/internal/models"

// Link is one entry of the navigation bar.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Profile is the navigation variant for the current visitor. Exactly one of
// Anonymous, Member or Admin applies at a time.
type Profile interface {
	Name() string
	Links() []Link
	isProfile()
}

// Anonymous is a visitor without a session.
type Anonymous struct{}

// Member is a signed-in traveller.
type Member struct {
	User *models.User
}

// Admin is a signed-in administrator.
type Admin struct {
	User *models.User
}

func (Anonymous) Name() string { return "anonymous" }
func (Member) Name() string    { return "member" }
func (Admin) Name() string     { return "admin" }

func (Anonymous) isProfile() {}
func (Member) isProfile()    {}
func (Admin) isProfile()     {}

func (Anonymous) Links() []Link {
	return []Link{
		{Label: "Home", Href: HomePath},
		{Label: "About", Href: AboutPath},
		{Label: "Contact", Href: ContactPath},
		{Label: "Login", Href: LoginPath},
		{Label: "Register", Href: RegisterPath},
	}
}

func (Member) Links() []Link {
	return []Link{
		{Label: "Search Flights", Href: SearchPath},
		{Label: "My Bookings", Href: BookingsPath},
	}
}

func (Admin) Links() []Link {
	return []Link{
		{Label: "Dashboard", Href: AdminPath},
		{Label: "Manage Flights", Href: AdminFlightsPath},
		{Label: "Bookings", Href: AdminBookingsPath},
		{Label: "Payments", Href: AdminPaymentsPath},
	}
}

// ProfileFor selects the navigation variant for user (nil means anonymous).
func ProfileFor(user *models.User) Profile {
	switch {
	case user == nil:
		return Anonymous{}
	case user.Role == models.RoleAdmin:
		return Admin{User: user}
	default:
		return Member{User: user}
	}
}

// HomeFor is where a user with role lands after signing in.
func HomeFor(role models.Role) string {
	if role == models.RoleAdmin {
		return AdminPath
	}
	return SearchPath
}
