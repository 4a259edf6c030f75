package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/navigation"
	"github.com/skybook/skybook-web/internal/services"
)

type PopularRoute struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Price float64 `json:"price"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// HomeView is the landing page.
type HomeView struct {
	Headline      string            `json:"headline"`
	PopularRoutes []PopularRoute    `json:"popularRoutes"`
	HowItWorks    []Feature         `json:"howItWorks"`
	WhyChooseUs   []Feature         `json:"whyChooseUs"`
	Links         []navigation.Link `json:"links"`
}

type AboutView struct {
	Values []Feature `json:"values"`
	Stats  []Stat    `json:"stats"`
}

type ContactView struct {
	Email  string                  `json:"email"`
	Phone  string                  `json:"phone"`
	Office string                  `json:"office"`
	Result *models.ContactResponse `json:"result,omitempty"`
}

var homeView = HomeView{
	Headline: "Flight with Ease",
	PopularRoutes: []PopularRoute{
		{From: "New York", To: "Los Angeles", Price: 199},
		{From: "London", To: "Paris", Price: 89},
		{From: "Tokyo", To: "Seoul", Price: 159},
		{From: "Dubai", To: "Singapore", Price: 299},
		{From: "Sydney", To: "Auckland", Price: 179},
		{From: "Miami", To: "Cancun", Price: 149},
	},
	HowItWorks: []Feature{
		{Title: "Search Flights", Description: "Enter your travel details and browse available flights from top airlines."},
		{Title: "Book Your Seat", Description: "Select your preferred flight and choose your seat for the journey."},
		{Title: "Secure Payment", Description: "Complete your booking with our secure payment processing system."},
		{Title: "Get Confirmation", Description: "Receive instant confirmation and e-ticket directly to your email."},
	},
	WhyChooseUs: []Feature{
		{Title: "Secure Payments", Description: "Bank-grade encryption protects your payment information at all times."},
		{Title: "Reliable Bookings", Description: "Real-time availability and instant confirmation for every booking."},
		{Title: "Transparent Pricing", Description: "No hidden fees. What you see is what you pay, always."},
		{Title: "24/7 Support", Description: "Our customer support team is available around the clock to assist you."},
	},
	Links: []navigation.Link{
		{Label: "Search Flights", Href: navigation.SearchPath},
		{Label: "Create Account", Href: navigation.RegisterPath},
	},
}

var aboutView = AboutView{
	Values: []Feature{
		{Title: "Customer First", Description: "Every decision starts with our customers in mind"},
		{Title: "Excellence", Description: "We strive for excellence in everything we do"},
		{Title: "Integrity", Description: "Transparent pricing with no hidden fees"},
		{Title: "Innovation", Description: "Continuously improving our platform"},
	},
	Stats: []Stat{
		{Number: "100K+", Label: "Happy Travelers"},
		{Number: "50+", Label: "Airlines"},
		{Number: "1000+", Label: "Destinations"},
	},
}

func contactView() ContactView {
	return ContactView{
		Email:  "support@skybook.com",
		Phone:  "+1 (555) 123-4567",
		Office: "123 Aviation Way, New York, NY 10001",
	}
}

// PublicHandler serves the pages anyone may visit.
type PublicHandler struct {
	contact services.ContactServiceInterface
	pages   *Pages
}

func NewPublicHandler(contact services.ContactServiceInterface, pages *Pages) *PublicHandler {
	return &PublicHandler{contact: contact, pages: pages}
}

func (h *PublicHandler) Home(c *gin.Context) {
	h.pages.Render(c, http.StatusOK, homeView)
}

func (h *PublicHandler) About(c *gin.Context) {
	h.pages.Render(c, http.StatusOK, aboutView)
}

func (h *PublicHandler) Contact(c *gin.Context) {
	h.pages.Render(c, http.StatusOK, contactView())
}

func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, err)
		return
	}

	view := contactView()
	view.Result = h.contact.Submit(c.Request.Context(), form)
	if !view.Result.Success {
		h.pages.Render(c, http.StatusBadRequest, view)
		return
	}
	h.pages.Render(c, http.StatusOK, view)
}
