package model

import "time"

// Event is the competition/fest event a team registers for.
type Event struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Venue     string    `gorm:"column:venue" json:"venue"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Event) TableName() string {
	return "event"
}

// Team registration record. Code is the short display identifier printed on
// passes (e.g. GT-2026-4496), distinct from the storage primary key.
type Team struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	Code            string    `gorm:"column:code;uniqueIndex" json:"code"`
	Name            string    `gorm:"column:name" json:"name"`
	CollegeName     string    `gorm:"column:college_name" json:"college_name"`
	EventID         string    `gorm:"column:event_id" json:"event_id"`
	HasPaid         bool      `gorm:"column:has_paid" json:"has_paid"`
	PaymentStatus   string    `gorm:"column:payment_status" json:"payment_status"`
	PassesGenerated bool      `gorm:"column:passes_generated" json:"passes_generated"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`

	Event   *Event   `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Members []Member `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

func (Team) TableName() string {
	return "team"
}

const (
	RoleCaptain = "captain"
	RoleMember  = "member"
)

type Member struct {
	ID         string     `gorm:"column:id;primaryKey" json:"id"`
	TeamID     string     `gorm:"column:team_id;index" json:"team_id"`
	Name       string     `gorm:"column:name" json:"name"`
	Email      string     `gorm:"column:email" json:"email"`
	Phone      string     `gorm:"column:phone" json:"phone"`
	Role       string     `gorm:"column:role" json:"role"`
	PassURL    string     `gorm:"column:pass_url" json:"pass_url"`
	Attended   bool       `gorm:"column:attended" json:"attended"`
	AttendedAt *time.Time `gorm:"column:attended_at" json:"attended_at,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Member) TableName() string {
	return "member"
}

// Captain returns the team's primary contact, nil when the roster has none.
func (t *Team) Captain() *Member {
	for i := range t.Members {
		if t.Members[i].Role == RoleCaptain {
			return &t.Members[i]
		}
	}
	return nil
}
