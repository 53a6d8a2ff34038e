package validators

// Client-facing constraint messages. The exact texts are part of the public
// API contract: they appear verbatim in 400 response bodies.
const (
	MsgFirstNameRequired   = "A first name is required"
	MsgLastNameRequired    = "A last name is required"
	MsgEmailRequired       = "An email is required"
	MsgEmailInvalid        = "Please provide a valid email address"
	MsgEmailAlreadyExists  = "The email you entered already exists"
	MsgPasswordRequired    = "A password is required"
	MsgTitleRequired       = "A title is required"
	MsgDescriptionRequired = "A description is required"
)
