package model

type Instructor struct {
	InstructorID     string `json:"instructorId" db:"instructor_id"`
	FirstName        string `json:"firstName" db:"first_name"`
	LastName         string `json:"lastName" db:"last_name"`
	Email            string `json:"email" db:"email"`
	Phone            string `json:"phone" db:"phone"`
	Address          string `json:"address" db:"address"`
	PreferredContact string `json:"preferredContact" db:"preferred_contact"`
}

type CreateInstructorRequest struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	Address          string `json:"address"`
	PreferredContact string `json:"preferredContact"`
}

// InstructorRef is the projection used to populate dropdown lists.
type InstructorRef struct {
	InstructorID string `json:"instructorId" db:"instructor_id"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
}
