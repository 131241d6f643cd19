package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
)

type multipartPart struct {
	name        string
	fileName    string
	contentType string
	data        []byte
}

// Multipart accumulates form fields, JSON parts and files in insertion
// order.
type Multipart struct {
	parts []multipartPart
}

func NewMultipart() *Multipart {
	return &Multipart{}
}

func (m *Multipart) Field(name, value string) *Multipart {
	m.parts = append(m.parts, multipartPart{name: name, data: []byte(value)})
	return m
}

// JSON adds an application/json part, which is how the backend expects a
// DTO next to a file.
func (m *Multipart) JSON(name string, value any) *Multipart {
	encoded, err := json.Marshal(value)
	if err != nil {
		encoded = []byte("null")
	}
	m.parts = append(m.parts, multipartPart{name: name, fileName: "blob", contentType: "application/json", data: encoded})
	return m
}

func (m *Multipart) File(name, fileName, contentType string, data []byte) *Multipart {
	m.parts = append(m.parts, multipartPart{name: name, fileName: fileName, contentType: contentType, data: data})
	return m
}

func (m *Multipart) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, part := range m.parts {
		if part.fileName == "" && part.contentType == "" {
			if err := writer.WriteField(part.name, string(part.data)); err != nil {
				return nil, "", err
			}
			continue
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, part.name, part.fileName))
		contentType := part.contentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		w, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}
