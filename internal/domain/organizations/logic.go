package organizations

import "strings"

// Search keeps organizations whose name, email or registration number
// contains term, ignoring case.
func Search(list []Summary, term string) []Summary {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list
	}
	out := make([]Summary, 0, len(list))
	for _, org := range list {
		if strings.Contains(strings.ToLower(org.Name), term) ||
			strings.Contains(strings.ToLower(org.Email), term) ||
			strings.Contains(strings.ToLower(org.RegistrationNumber), term) {
			out = append(out, org)
		}
	}
	return out
}

func Count(list []Summary) Counts {
	c := Counts{Total: len(list)}
	for _, org := range list {
		switch {
		case org.Verified:
			c.Verified++
		case org.UserStatus == UserStatusPending:
			c.Pending++
		case org.UserStatus == UserStatusInactive:
			c.Rejected++
		}
	}
	return c
}

func IsPDF(url string) bool {
	return strings.Contains(strings.ToLower(url), ".pdf")
}

func IsImage(url string) bool {
	lower := strings.ToLower(url)
	return strings.HasSuffix(lower, ".jpg") ||
		strings.HasSuffix(lower, ".jpeg") ||
		strings.HasSuffix(lower, ".png") ||
		strings.Contains(lower, "/image/") ||
		strings.Contains(lower, "image%2f")
}

// ClassifyDocument labels a verification document by its URL.
func ClassifyDocument(url string) DocumentKind {
	if url == "" {
		return DocumentUnknown
	}
	if IsPDF(url) {
		return DocumentPDF
	}
	if IsImage(url) {
		lower := strings.ToLower(url)
		switch {
		case strings.Contains(lower, ".jpg"), strings.Contains(lower, ".jpeg"):
			return DocumentJPEG
		case strings.Contains(lower, ".png"):
			return DocumentPNG
		}
		return DocumentImage
	}
	return DocumentOther
}
