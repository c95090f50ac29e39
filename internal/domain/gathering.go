package domain

import "time"

type GatheringStatus string

const (
	GatheringStatusOpen   GatheringStatus = "OPEN"
	GatheringStatusClosed GatheringStatus = "CLOSED"
)

type Gathering struct {
	ID                  int32           `json:"id"`
	HostID              int32           `json:"host_id"`
	Host                *User           `json:"host,omitempty"` // Populated on search results
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Location            string          `json:"location"`
	MeetDate            time.Time       `json:"meet_date"`
	MaxParticipants     int32           `json:"max_participants"`
	CurrentParticipants int32           `json:"current_participants"`
	Status              GatheringStatus `json:"status"`
	CreatedOn           time.Time       `json:"created_on"`
}

type ParticipationStatus string

const (
	ParticipationStatusWaitlisted ParticipationStatus = "WAITLIST"
	ParticipationStatusApproved   ParticipationStatus = "APPROVED"
	ParticipationStatusRejected   ParticipationStatus = "REJECTED"
)

// Participation is the (gathering, user) membership row. WaitOrder is
// meaningful only while the status is WAITLIST; orders within one
// gathering's waitlist are unique and strictly ordered, lower is earlier.
type Participation struct {
	GatheringID int32               `json:"gathering_id"`
	UserID      int32               `json:"user_id"`
	User        *User               `json:"user,omitempty"` // Populated on applicant lists
	Status      ParticipationStatus `json:"status"`
	WaitOrder   int32               `json:"wait_order"`
	CreatedOn   time.Time           `json:"created_on"`
	Gathering   *Gathering          `json:"gathering,omitempty"` // Populated on "my applications"
}
