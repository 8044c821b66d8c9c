package service

import (
	"recruai-web/internal/dto"
	"recruai-web/internal/listview"
)

func field(paths ...string) func(dto.Record) string {
	return func(r dto.Record) string { return r.Text(paths...) }
}

func fields(fns ...func(dto.Record) string) func(dto.Record) []string {
	return func(r dto.Record) []string {
		out := make([]string, len(fns))
		for i, fn := range fns {
			out[i] = fn(r)
		}
		return out
	}
}

// Display fields. Backend objects are consumed opaquely, so each one lists the
// spellings it may arrive under.
var (
	CandidateName  = field("candidateName", "candidate_name", "candidate.name", "candidate.fullName", "name")
	CandidateEmail = field("candidateEmail", "candidate_email", "candidate.email", "email")
	Position       = field("position", "jobTitle", "job_title", "job.title", "role")
	InterviewType  = field("type", "interviewType", "interview_type")
	Status         = field("status", "state")
	ScheduledAt    = field("scheduledAt", "scheduled_at", "date", "startTime")
	AgentName      = field("agent.name", "agentName", "agentId", "agent_id")
	Decision       = field("decision", "finalDecision", "result")
	Score          = field("score", "overallScore", "overall_score", "evaluation.score")

	Name     = field("name", "fullName", "full_name", "username")
	Email    = field("email")
	Industry = field("industry", "sector")
	Location = field("location", "city", "country")
	Size     = field("size", "companySize", "company_size")
	UserRole = field("role", "type")
)

var InterviewListSpec = listview.Spec[dto.Record]{
	Search: fields(CandidateName, CandidateEmail, Position),
	Filters: []listview.Filter[dto.Record]{
		{Name: "status", Field: Status},
		{Name: "type", Field: InterviewType},
	},
}

var OrganizationListSpec = listview.Spec[dto.Record]{
	Search: fields(Name, Industry, Location),
	Filters: []listview.Filter[dto.Record]{
		{Name: "industry", Field: Industry},
		{Name: "size", Field: Size},
	},
}

var CandidateListSpec = listview.Spec[dto.Record]{
	Search: fields(Name, Email),
	Filters: []listview.Filter[dto.Record]{
		{Name: "status", Field: Status},
		{Name: "role", Field: UserRole},
	},
}

var TeamListSpec = listview.Spec[dto.Record]{
	Search: fields(Name, Email),
	Filters: []listview.Filter[dto.Record]{
		{Name: "role", Field: UserRole},
		{Name: "status", Field: Status},
	},
}

var PipelineCandidateSpec = listview.Spec[dto.Record]{
	Search: fields(CandidateName, CandidateEmail, Position),
	Filters: []listview.Filter[dto.Record]{
		{Name: "decision", Field: Decision},
	},
}
