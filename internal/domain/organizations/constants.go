package organizations

// Admin list filters.
const (
	FilterAll      = "ALL"
	FilterVerified = "VERIFIED"
	FilterPending  = "PENDING"
	FilterRejected = "REJECTED"
)

var Filters = []string{FilterAll, FilterVerified, FilterPending, FilterRejected}

const (
	UserStatusPending  = "PENDING"
	UserStatusInactive = "INACTIVE"
	UserStatusActive   = "ACTIVE"
)

type DocumentKind string

const (
	DocumentUnknown DocumentKind = "Unknown"
	DocumentPDF     DocumentKind = "PDF Document"
	DocumentJPEG    DocumentKind = "JPEG Image"
	DocumentPNG     DocumentKind = "PNG Image"
	DocumentImage   DocumentKind = "Image File"
	DocumentOther   DocumentKind = "Document"
)
