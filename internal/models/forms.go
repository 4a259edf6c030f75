package models

// LoginForm is submitted by the login page. Presence is checked by the
// auth service so that it can raise the matching notification.
type LoginForm struct {
	Email    string `json:"email" form:"email" binding:"omitempty,email"`
	Password string `json:"password" form:"password"`
}

// RegisterForm is submitted by the register page.
type RegisterForm struct {
	Name            string `json:"name" form:"name" binding:"max=100"`
	Email           string `json:"email" form:"email" binding:"omitempty,email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// SearchForm is the flight search query.
type SearchForm struct {
	Origin      string `json:"origin" form:"origin"`
	Destination string `json:"destination" form:"destination"`
	Date        string `json:"date" form:"date"`
	Passengers  int    `json:"passengers" form:"passengers"`
}

// FlightForm is the admin create/edit flight form.
type FlightForm struct {
	Airline        string  `json:"airline" form:"airline" binding:"required"`
	FlightNumber   string  `json:"flightNumber" form:"flightNumber" binding:"required"`
	Origin         string  `json:"origin" form:"origin" binding:"required,len=3"`
	Destination    string  `json:"destination" form:"destination" binding:"required,len=3,nefield=Origin"`
	DepartureTime  string  `json:"departureTime" form:"departureTime" binding:"required"`
	ArrivalTime    string  `json:"arrivalTime" form:"arrivalTime" binding:"required"`
	BasePrice      float64 `json:"basePrice" form:"basePrice" binding:"gt=0"`
	SeatsAvailable int     `json:"seatsAvailable" form:"seatsAvailable" binding:"gte=0"`
	Aircraft       string  `json:"aircraft" form:"aircraft"`
}

// RefundForm is the admin refund action.
type RefundForm struct {
	Reason string `json:"reason" form:"reason" binding:"max=500"`
}
