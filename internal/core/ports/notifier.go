package ports

// InquiryNotification is the payload handed to the async notification
// dispatcher when a new lead arrives.
type InquiryNotification struct {
	InquiryID  string
	Name       string
	Email      string
	Phone      string
	PropertyID string
	Message    string
}
