package seedmodels

// SeedDocument is a document entry in the JSON seed file. Path is relative
// to the course directory under the upload root.
type SeedDocument struct {
	Name          string `json:"document_name"`
	Path          string `json:"path"`
	NumberOfPages int    `json:"number_of_pages"`
}

// SeedCourse is a course entry in the JSON seed file.
type SeedCourse struct {
	Name      string         `json:"course_name"`
	Documents []SeedDocument `json:"documents"`
}
