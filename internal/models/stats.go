package models

// Stats aggregates the row counts exposed by the statistics endpoint.
type Stats struct {
	Contacts    int `json:"contacts"`
	Enrollments int `json:"enrollments"`
	Users       int `json:"users"`
}
