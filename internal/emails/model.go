package emails

// Attachment is a file attached to an inbound RFP email.
type Attachment struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
}

// Email is an inbound message carrying RFP documents, as shown in the
// import wizard's email picker.
type Email struct {
	ID          string       `json:"id"`
	Subject     string       `json:"subject"`
	Sender      string       `json:"sender"`
	Attachments []Attachment `json:"attachments"`
}
