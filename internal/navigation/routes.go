package navigation

import (
	"strings"

	"github.com/skybook/skybook-web/internal/models"
)

const (
	HomePath          = "/"
	AboutPath         = "/about"
	ContactPath       = "/contact"
	LoginPath         = "/login"
	RegisterPath      = "/register"
	SearchPath        = "/search"
	BookingsPath      = "/bookings"
	BookingPath       = "/booking"
	AdminPath         = "/admin"
	AdminFlightsPath  = "/admin/flights"
	AdminBookingsPath = "/admin/bookings"
	AdminPaymentsPath = "/admin/payments"
)

// Access is the protection class of a route.
type Access int

const (
	Public Access = iota
	UserOnly
	AdminOnly
)

func (a Access) String() string {
	switch a {
	case UserOnly:
		return "user"
	case AdminOnly:
		return "admin"
	default:
		return "public"
	}
}

// AllowedRoles is the guard allow-list of the access class; nil for public routes.
func (a Access) AllowedRoles() []models.Role {
	switch a {
	case UserOnly:
		return []models.Role{models.RoleUser}
	case AdminOnly:
		return []models.Role{models.RoleAdmin}
	default:
		return nil
	}
}

// Route is a client-visible page.
type Route struct {
	Pattern string
	Title   string
	Access  Access
}

// Routes lists every page of the application.
var Routes = []Route{
	{Pattern: HomePath, Title: "Home", Access: Public},
	{Pattern: AboutPath, Title: "About", Access: Public},
	{Pattern: ContactPath, Title: "Contact", Access: Public},
	{Pattern: LoginPath, Title: "Login", Access: Public},
	{Pattern: RegisterPath, Title: "Register", Access: Public},
	{Pattern: SearchPath, Title: "Search Flights", Access: UserOnly},
	{Pattern: BookingsPath, Title: "My Bookings", Access: UserOnly},
	{Pattern: BookingsPath + "/:id", Title: "Booking Details", Access: UserOnly},
	{Pattern: BookingPath + "/:flightId", Title: "Book Flight", Access: UserOnly},
	{Pattern: AdminPath, Title: "Admin Dashboard", Access: AdminOnly},
	{Pattern: AdminFlightsPath, Title: "Manage Flights", Access: AdminOnly},
	{Pattern: AdminBookingsPath, Title: "Manage Bookings", Access: AdminOnly},
	{Pattern: AdminPaymentsPath, Title: "Payments", Access: AdminOnly},
}

// Lookup finds the route matching a concrete path such as /bookings/BK001.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if matches(r.Pattern, path) {
			return r, true
		}
	}
	return Route{}, false
}

func matches(pattern, path string) bool {
	if pattern == path {
		return true
	}
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
