package models

// ContactForm is a message sent from the contact page
type ContactForm struct {
	FirstName string `json:"firstName" form:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" form:"lastName" binding:"required,max=100"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Subject   string `json:"subject" form:"subject" binding:"required,max=200"`
	Message   string `json:"message" form:"message" binding:"required,max=5000"`
}

// ContactResponse is shown after the contact form is submitted
type ContactResponse struct {
	Success bool   `json:"success"`
	Title   string `json:"title,omitempty"`
	Error   string `json:"error,omitempty"`
}
