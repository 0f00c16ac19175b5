package feedback

import "time"

// Columns is the fixed, all-text schema of the feedback table.
var Columns = []string{
	"LOCATION_ID",
	"LOCATION_NAME",
	"LOCATION_ADDRESS",
	"USER_COMMENTS",
	"USER_RATING",
}

// Record is one row of the feedback table. The location fields come
// pre-filled from the chosen restaurant but the user may edit them.
type Record struct {
	LocationID      string `json:"LOCATION_ID" form:"location_id"`
	LocationName    string `json:"LOCATION_NAME" form:"location_name"`
	LocationAddress string `json:"LOCATION_ADDRESS" form:"location_address"`
	UserComments    string `json:"USER_COMMENTS" form:"user_comments"`
	UserRating      string `json:"USER_RATING" form:"user_rating"`
}

// Values returns the record in column order.
func (r Record) Values() []string {
	return []string{
		r.LocationID,
		r.LocationName,
		r.LocationAddress,
		r.UserComments,
		r.UserRating,
	}
}

const DefaultRating = "1"

// Ratings are the choices of the score radio, lowest first.
var Ratings = []string{"1", "2", "3", "4", "5"}

func ValidRating(r string) bool {
	for _, v := range Ratings {
		if r == v {
			return true
		}
	}
	return false
}

// Result is what a successful submit hands back to the page.
type Result struct {
	SubmissionID string    `json:"submission_id"`
	Record       Record    `json:"record"`
	Message      string    `json:"message"`
	History      []Record  `json:"history"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// Event is published after a record has been appended.
type Event struct {
	SubmissionID string    `json:"submission_id"`
	Record       Record    `json:"record"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
