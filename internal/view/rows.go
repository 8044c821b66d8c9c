package view

type InterviewRow struct {
	ID          string
	Candidate   string
	Email       string
	Position    string
	Type        string
	Status      string
	ScheduledAt string
	Agent       string
	Decision    string
	Score       string
}

func (r InterviewRow) Cancellable() bool {
	switch r.Status {
	case "cancelled", "completed":
		return false
	}
	return true
}

type OrganizationRow struct {
	ID       string
	Name     string
	Industry string
	Location string
	Size     string
}

type CandidateRow struct {
	ID     string
	Name   string
	Email  string
	Role   string
	Status string
}

type MemberRow struct {
	ID     string
	Name   string
	Email  string
	Role   string
	Status string
}

type StageColumn struct {
	ID         string
	Name       string
	Candidates []InterviewRow
}

type Board struct {
	Stages   []StageColumn
	Search   string
	Filters  []FilterControl
	Modal    *Modal
	Total    int
	Filtered int
}

type Metric struct {
	Label string
	Value string
}

type Analytics struct {
	Available bool
	Metrics   []Metric
}

type Overview struct {
	Cards []Metric
	Links []Metric
}

type SignIn struct {
	Email  string
	Next   string
	Errors map[string]string
}

type Landing struct {
	Testimonials []Testimonial
	Waitlist     WaitlistForm
	WaitlistSize int64
}

type Testimonial struct {
	Quote  string
	Author string
	Title  string
}

type WaitlistForm struct {
	Email  string
	Name   string
	Role   string
	Joined bool
	Errors map[string]string
}

type PricingTier struct {
	Name     string
	Price    string
	Period   string
	Features []string
	CTA      string
	Featured bool
}
