package response

import (
	"reliefreach/domain/core"
)

// Availability describes when a candidate can start
type Availability struct {
	Immediate bool            `json:"immediate"`
	StartDate *core.Timestamp `json:"start_date,omitempty"`
	Duration  string          `json:"duration,omitempty"`
}

// CandidateProfile is a submitted candidate application. Profiles are
// immutable once handed to the responder.
type CandidateProfile struct {
	ID                 core.ProfileID `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Phone              string         `json:"phone,omitempty"`
	Location           string         `json:"location"`
	Skills             []string       `json:"skills"`
	Availability       Availability   `json:"availability"`
	Verified           bool           `json:"verified"`
	Rating             *float64       `json:"rating,omitempty"`
	PreviousExperience []string       `json:"previous_experience"`
}

// Scores holds the heuristic profile scores, each in [0,1]
type Scores struct {
	Skill        float64 `json:"skill_score"`
	Availability float64 `json:"availability_score"`
	Location     float64 `json:"location_score"`
	Overall      float64 `json:"overall_score"`
}

// TriggerCondition enumerates the supported trigger rule kinds. Conditions
// outside this set are inert: they never satisfy.
type TriggerCondition string

const (
	ConditionSkillMatch    TriggerCondition = "skill_match"
	ConditionLocationMatch TriggerCondition = "location_match"
	ConditionAvailability  TriggerCondition = "availability"
	ConditionVerification  TriggerCondition = "verification_status"
)

// TriggerAction names what a satisfied trigger leads to
type TriggerAction string

const (
	ActionSendAutoResponse  TriggerAction = "send_auto_response"
	ActionFlagForReview     TriggerAction = "flag_for_review"
	ActionScheduleInterview TriggerAction = "schedule_interview"
)

// Trigger pairs a condition and threshold with an action. Triggers are
// evaluated in list order and the first satisfied one wins.
type Trigger struct {
	Condition TriggerCondition `json:"condition"`
	Value     any              `json:"value"`
	Action    TriggerAction    `json:"action"`
}

// Template is a reusable auto-response message with named placeholders
type Template struct {
	ID        core.TemplateID `json:"id"`
	Name      string          `json:"name"`
	Subject   string          `json:"subject"`
	Body      string          `json:"body"`
	Variables []string        `json:"variables"`
	Triggers  []Trigger       `json:"triggers"`
}

// TemplateUpdate carries the fields of a shallow template merge. Nil fields
// are left untouched.
type TemplateUpdate struct {
	Name      *string    `json:"name,omitempty"`
	Subject   *string    `json:"subject,omitempty"`
	Body      *string    `json:"body,omitempty"`
	Variables *[]string  `json:"variables,omitempty"`
	Triggers  *[]Trigger `json:"triggers,omitempty"`
}

// AutoResponseStatus tracks delivery of a generated response
type AutoResponseStatus string

const (
	StatusPending AutoResponseStatus = "pending"
	StatusSent    AutoResponseStatus = "sent"
	StatusReplied AutoResponseStatus = "replied"
)

// AutoResponse is a generated candidate message. Created once per qualifying
// profile; only the status mutates afterwards.
type AutoResponse struct {
	ID         core.ResponseID    `json:"id"`
	CampaignID core.CampaignID    `json:"campaign_id"`
	Profile    CandidateProfile   `json:"respondent_profile"`
	Message    string             `json:"message"`
	Timestamp  core.Timestamp     `json:"timestamp"`
	Status     AutoResponseStatus `json:"status"`
	Template   Template           `json:"template"`
}
