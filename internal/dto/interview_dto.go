package dto

type InterviewForm struct {
	CandidateName  string `form:"candidate_name" validate:"omitempty,max=120"`
	CandidateEmail string `form:"candidate_email" validate:"required,email"`
	Position       string `form:"position" validate:"required,max=200"`
	Type           string `form:"type" validate:"required,oneof=technical behavioral hr screening"`
	ScheduledAt    string `form:"scheduled_at" validate:"required"`
	Notes          string `form:"notes" validate:"omitempty,max=2000"`
}

func (f InterviewForm) Payload() map[string]interface{} {
	return map[string]interface{}{
		"candidateName":  f.CandidateName,
		"candidateEmail": f.CandidateEmail,
		"position":       f.Position,
		"type":           f.Type,
		"scheduledAt":    f.ScheduledAt,
		"notes":          f.Notes,
	}
}

type AssignAgentForm struct {
	AgentID string `form:"agent_id" validate:"required"`
}

func (f AssignAgentForm) Payload() map[string]interface{} {
	return map[string]interface{}{"agentId": f.AgentID}
}

type BulkDeleteForm struct {
	IDs []string `form:"ids"`
}

type DecisionForm struct {
	Decision string `form:"decision" validate:"required,oneof=advance hold reject hire"`
	Feedback string `form:"feedback" validate:"omitempty,max=2000"`
}

func (f DecisionForm) Payload() map[string]interface{} {
	return map[string]interface{}{
		"decision": f.Decision,
		"feedback": f.Feedback,
	}
}
