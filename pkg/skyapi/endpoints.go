package skyapi

// Endpoint catalogue, relative to the /api/v1 base URL.
const (
	EndpointLogin          = "/users/login"
	EndpointSignup         = "/users/signup"
	EndpointLogout         = "/users/logout"
	EndpointMe             = "/users/me"
	EndpointUpdateMe       = "/users/updateMe"
	EndpointUpdatePassword = "/users/updateMyPassword"

	EndpointFlights      = "/flights"
	EndpointFlightSearch = "/flights/search"
	EndpointFlightStats  = "/flights/stats/flight-stats"

	EndpointBookings     = "/bookings"
	EndpointMyBookings   = "/bookings/my-bookings"
	EndpointBookingStats = "/bookings/stats/booking-stats"

	EndpointPayments        = "/payments"
	EndpointPaymentInitiate = "/payments/initiate"
	EndpointPaymentVerify   = "/payments/verify"
	EndpointMyPayments      = "/payments/my-payments"
	EndpointPaymentRefund   = "/payments/refund"
	EndpointPaymentStats    = "/payments/stats/payment-stats"

	EndpointUsers          = "/users"
	EndpointDashboardStats = "/users/dashboard-stats"
)
