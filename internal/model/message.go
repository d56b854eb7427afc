package model

// Message is a contact-form submission. The store assigns ID; the
// service stamps Date (YYYY-MM-DD) and Read=false on submission. The
// read flag is flipped by the admin through a whole-collection replace.
type Message struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}
