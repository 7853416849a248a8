package payload

type GeneratedArtifact struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	URL      string `json:"url"`
}

type GeneratePassResult struct {
	TeamID          string              `json:"team_id"`
	TeamCode        string              `json:"team_code"`
	TotalMembers    int                 `json:"total_members"`
	SuccessCount    int                 `json:"success_count"`
	FailedCount     int                 `json:"failed_count"`
	Artifacts       []GeneratedArtifact `json:"artifacts"`
	Notified        bool                `json:"notified"`
	MarkedGenerated bool                `json:"marked_generated"`
}

type MemberPassStatus struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	HasPass  bool   `json:"has_pass"`
	PassURL  string `json:"pass_url,omitempty"`
}

type TeamPassStatus struct {
	TeamID          string             `json:"team_id"`
	TeamCode        string             `json:"team_code"`
	HasPaid         bool               `json:"has_paid"`
	PassesGenerated bool               `json:"passes_generated"`
	Members         []MemberPassStatus `json:"members"`
}
