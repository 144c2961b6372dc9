package gmail

import gmailapi "google.golang.org/api/gmail/v1"

// Client wraps the Gmail API service.
type Client struct {
	service *gmailapi.Service
}

// Message is a plain-text email
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}
