package enums

import "fmt"

// EnquiryStatus tracks whether a seller has responded.
type EnquiryStatus string

const (
	EnquiryStatusNew     EnquiryStatus = "new"
	EnquiryStatusReplied EnquiryStatus = "replied"
)

var validEnquiryStatuses = []EnquiryStatus{
	EnquiryStatusNew,
	EnquiryStatusReplied,
}

// String implements fmt.Stringer.
func (s EnquiryStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known EnquiryStatus.
func (s EnquiryStatus) IsValid() bool {
	for _, candidate := range validEnquiryStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseEnquiryStatus converts raw input into an EnquiryStatus.
func ParseEnquiryStatus(value string) (EnquiryStatus, error) {
	for _, candidate := range validEnquiryStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid enquiry status %q", value)
}

// EnquiryChannel separates one-click messaging leads from written form
// enquiries. An explicit field, not a message-content convention.
type EnquiryChannel string

const (
	EnquiryChannelForm          EnquiryChannel = "form"
	EnquiryChannelDirectContact EnquiryChannel = "direct_contact"
)

var validEnquiryChannels = []EnquiryChannel{
	EnquiryChannelForm,
	EnquiryChannelDirectContact,
}

// String implements fmt.Stringer.
func (c EnquiryChannel) String() string {
	return string(c)
}

// IsValid reports whether the value is a known EnquiryChannel.
func (c EnquiryChannel) IsValid() bool {
	for _, candidate := range validEnquiryChannels {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseEnquiryChannel converts raw input into an EnquiryChannel.
func ParseEnquiryChannel(value string) (EnquiryChannel, error) {
	for _, candidate := range validEnquiryChannels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid enquiry channel %q", value)
}
