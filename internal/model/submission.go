// Package model defines the lead-capture form submissions and their validation rules.
package model

// Field is one labelled value of a submission, in display order.
type Field struct {
	Label string
	Value string
}

// Submission is a validated form record ready for auditing and notification.
type Submission interface {
	// Kind is the routing key for the submission, also used as the audit file name.
	Kind() string
	// Subject is the notification email subject line.
	Subject() string
	// Fields lists the submitted values in the order they appear in the notification.
	Fields() []Field
	// Honeypot returns the hidden trap field; non-empty marks the sender as a bot.
	Honeypot() string
}

// ContactSubmission is a generic contact or pricing inquiry.
type ContactSubmission struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Message        string `json:"message" validate:"required"`
	InquiryType    string `json:"inquiryType,omitempty"`
	SelectedTier   string `json:"selectedTier,omitempty"`
	SourceURL      string `json:"sourceUrl,omitempty" validate:"omitempty,url"`
	CompanyWebsite string `json:"companyWebsite,omitempty"`
}

func (s *ContactSubmission) Kind() string { return "contact" }

func (s *ContactSubmission) Subject() string {
	return "New Contact Form Submission from " + s.Name
}

func (s *ContactSubmission) Fields() []Field {
	return []Field{
		{"Name", s.Name},
		{"Email", s.Email},
		{"Inquiry Type", orNotSpecified(s.InquiryType)},
		{"Selected Pricing Tier", orNotSpecified(s.SelectedTier)},
		{"Message", s.Message},
		{"Source Page", orNotSpecified(s.SourceURL)},
	}
}

func (s *ContactSubmission) Honeypot() string { return s.CompanyWebsite }

// AttendanceEnquiry is a product-specific enquiry for the attendance monitoring system.
type AttendanceEnquiry struct {
	FullName          string `json:"fullName" validate:"required"`
	Role              string `json:"role" validate:"required,oneof=Owner Admin IT Teacher"`
	SchoolName        string `json:"schoolName" validate:"required"`
	CityProvince      string `json:"cityProvince" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required,min=5"`
	EstimatedStudents string `json:"estimatedStudents" validate:"required,oneof=100 250 400 500 1000+"`
	HighSchool        string `json:"highSchool" validate:"required,oneof=yes no"`
	Message           string `json:"message" validate:"required"`
	SourceURL         string `json:"sourceUrl,omitempty" validate:"omitempty,url"`
	CompanyWebsite    string `json:"companyWebsite,omitempty"`
}

func (s *AttendanceEnquiry) Kind() string { return "attendance-enquiry" }

func (s *AttendanceEnquiry) Subject() string {
	return "New Attendance Enquiry from " + s.SchoolName
}

func (s *AttendanceEnquiry) Fields() []Field {
	return []Field{
		{"Full Name", s.FullName},
		{"Role", s.Role},
		{"School Name", s.SchoolName},
		{"City / Province", s.CityProvince},
		{"Email", s.Email},
		{"Phone", s.Phone},
		{"Estimated Students", s.EstimatedStudents},
		{"High School", s.HighSchool},
		{"Message", s.Message},
		{"Source Page", orNotSpecified(s.SourceURL)},
	}
}

func (s *AttendanceEnquiry) Honeypot() string { return s.CompanyWebsite }

func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}
