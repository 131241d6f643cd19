package reports

// Format is the file type of a generated report.
type Format string

const (
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

func (f Format) Extension() string {
	if f == FormatPDF {
		return ".pdf"
	}
	return ".xlsx"
}

// Report describes a file the backend generated and stored.
type Report struct {
	Message    string `json:"message"`
	ReportURL  string `json:"reportUrl"`
	FileName   string `json:"fileName"`
	Type       string `json:"type"`
	ReportType string `json:"reportType"`
	Month      string `json:"month,omitempty"`
	Year       string `json:"year,omitempty"`
}

// Period selects the month a salary report covers.
type Period struct {
	Month string
	Year  int
}
