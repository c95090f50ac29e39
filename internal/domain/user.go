package domain

type Role string

const (
	RoleStandard   Role = "STANDARD"
	RoleVIP        Role = "VIP"
	RoleRestricted Role = "RESTRICTED"
	RoleAdmin      Role = "ADMIN"
)

type FeedbackKind string

const (
	FeedbackLike    FeedbackKind = "LIKE"
	FeedbackDislike FeedbackKind = "DISLIKE"
)

type User struct {
	ID           int32  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email,omitempty"`
	Location     string `json:"location"`
	Role         Role   `json:"role"`
	Likes        int32  `json:"likes"`
	Dislikes     int32  `json:"dislikes"`
	CreatedOn    string `json:"created_on"`
}

// CanCreateListing reports whether the user's role allows putting a
// collection item up for sale. Restricted users may still buy.
func (u *User) CanCreateListing() bool {
	return u.Role != RoleRestricted
}
