package models

import "time"

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

// EnrollmentStatusPending is the status assigned to every new enrollment.
// The system exposes no update path, so it is the only status produced.
const EnrollmentStatusPending EnrollmentStatus = "pending"

// Enrollment captures a prospective student's registration for a course.
type Enrollment struct {
	ID        int64            `db:"id" json:"id"`
	Name      string           `db:"name" json:"name"`
	Email     string           `db:"email" json:"email"`
	Phone     string           `db:"phone" json:"phone"`
	Course    string           `db:"course" json:"course"`
	Status    EnrollmentStatus `db:"status" json:"status"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}
