package media

import (
	"fmt"
	"strconv"
	"strings"

	"payroll/internal/transport/http/shared"
)

// Rules bound what may be uploaded.
type Rules struct {
	MaxMB        float64
	AllowedTypes []string
}

var DefaultRules = Rules{
	MaxMB:        5,
	AllowedTypes: []string{"image/jpeg", "image/png", "image/jpg", "application/pdf"},
}

var ProfilePictureRules = Rules{
	MaxMB:        2,
	AllowedTypes: []string{"image/jpeg", "image/png", "image/jpg"},
}

// Validate checks size first, then type. It returns a
// *shared.ValidationError on field "file".
func (r Rules) Validate(f File) error {
	v := shared.NewValidator()
	if len(f.Data) == 0 {
		v.Add("file", "is required")
		return v.Err()
	}
	maxBytes := int64(r.MaxMB * 1024 * 1024)
	if f.Size() > maxBytes {
		v.Add("file", fmt.Sprintf("size exceeds %sMB limit", strconv.FormatFloat(r.MaxMB, 'f', -1, 64)))
		return v.Err()
	}
	if !r.allows(f.ContentType) {
		v.Add("file", fmt.Sprintf("type %s is not allowed. Allowed types: %s", f.ContentType, strings.Join(r.AllowedTypes, ", ")))
	}
	return v.Err()
}

func (r Rules) allows(contentType string) bool {
	contentType = baseType(contentType)
	for _, allowed := range r.AllowedTypes {
		if baseType(allowed) == contentType {
			return true
		}
	}
	return false
}
