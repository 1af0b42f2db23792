package responder

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/domain/response"
)

// Fallback strings used when a job posting does not supply a placeholder
// value. Candidates always receive a complete message.
const (
	fallbackRequiredSkills = "Various skills needed"
	fallbackDuration       = "To be determined"
	fallbackCompensation   = "Competitive compensation"
	fallbackContactInfo    = "Contact information will be provided"
	fallbackJobTitle       = "Disaster Relief Position"
	fallbackExperience     = "your background"
	fallbackPositions      = "Multiple positions available"
)

// Responder scores candidate profiles against the template registry and
// produces auto responses. Registry mutations are serialized behind a mutex;
// scoring and selection are pure reads.
type Responder struct {
	mu        sync.Mutex
	templates []response.Template

	// now is swappable for tests asserting response timestamps
	now func() time.Time
}

// NewResponder creates a responder seeded with the default templates
func NewResponder() *Responder {
	return &Responder{
		templates: defaultTemplates(),
		now:       time.Now,
	}
}

// SelectTemplate picks exactly one of the three canonical templates for any
// profile: urgent for high scorers who can start immediately, standard for
// solid applications, follow-up for everyone else. If a canonical template
// was deleted from the registry the built-in copy is used, keeping the
// selection total.
func (r *Responder) SelectTemplate(profile response.CandidateProfile) response.Template {
	scores := ScoreProfile(profile)

	var id core.TemplateID
	switch {
	case scores.Overall > 0.8 && profile.Availability.Immediate:
		id = TemplateUrgent
	case scores.Overall > 0.6:
		id = TemplateStandard
	default:
		id = TemplateFollowUp
	}

	if t := r.TemplateByID(id); t != nil {
		return *t
	}
	for _, t := range defaultTemplates() {
		if t.ID == id {
			return t
		}
	}
	// Unreachable: the canonical ids always exist in the defaults.
	return defaultTemplates()[len(defaultTemplates())-1]
}

// GenerateResponse builds a pending auto response for a qualifying profile.
// Every declared template variable is substituted from the profile and job
// details, falling back to documented defaults; it never fails for a valid
// profile because candidates must always receive some message.
func (r *Responder) GenerateResponse(profile response.CandidateProfile, campaignID core.CampaignID, job *campaign.JobPosting) response.AutoResponse {
	template := r.SelectTemplate(profile)
	message := personalize(template, profile, job)

	return response.AutoResponse{
		ID:         core.ResponseID(core.NewID()),
		CampaignID: campaignID,
		Profile:    profile,
		Message:    message,
		Timestamp:  core.NewTimestamp(r.now()),
		Status:     response.StatusPending,
		Template:   template,
	}
}

// personalize substitutes the declared template variables in the body.
// Variables without a replacement value render literally as [variable];
// undeclared {{placeholder}} tokens are left untouched.
func personalize(template response.Template, profile response.CandidateProfile, job *campaign.JobPosting) string {
	replacements := map[string]string{
		"name":                profile.Name,
		"skills":              strings.Join(profile.Skills, ", "),
		"location":            profile.Location,
		"required_skills":     jobRequirements(job),
		"duration":            jobDuration(job),
		"compensation":        jobCompensation(job),
		"contact_info":        jobContact(job),
		"job_title":           jobTitle(job),
		"previous_experience": previousExperience(profile),
		"available_positions": jobPositions(job),
	}

	message := template.Body
	for _, variable := range template.Variables {
		value, ok := replacements[variable]
		if !ok || value == "" {
			value = fmt.Sprintf("[%s]", variable)
		}
		message = strings.ReplaceAll(message, fmt.Sprintf("{{%s}}", variable), value)
	}
	return message
}

func jobRequirements(job *campaign.JobPosting) string {
	if job == nil || len(job.Requirements) == 0 {
		return fallbackRequiredSkills
	}
	return strings.Join(job.Requirements, ", ")
}

func jobDuration(job *campaign.JobPosting) string {
	if job == nil || job.EstimatedDuration == "" {
		return fallbackDuration
	}
	return job.EstimatedDuration
}

func jobCompensation(job *campaign.JobPosting) string {
	if job == nil || job.Compensation == nil || job.Compensation.Amount == nil {
		return fallbackCompensation
	}
	c := job.Compensation
	return fmt.Sprintf("%v %s per %s", *c.Amount, c.Currency, c.Type)
}

func jobContact(job *campaign.JobPosting) string {
	if job == nil || job.Contact == nil {
		return fallbackContactInfo
	}
	return fmt.Sprintf("%s - %s", job.Contact.Name, job.Contact.Email)
}

func jobTitle(job *campaign.JobPosting) string {
	if job == nil || job.Title == "" {
		return fallbackJobTitle
	}
	return job.Title
}

func previousExperience(profile response.CandidateProfile) string {
	if len(profile.PreviousExperience) == 0 {
		return fallbackExperience
	}
	return strings.Join(profile.PreviousExperience, ", ")
}

func jobPositions(job *campaign.JobPosting) string {
	if job == nil || job.Category == nil || job.Category.Primary == "" {
		return fallbackPositions
	}
	return job.Category.Primary
}

// ShouldAutoRespond evaluates a template's trigger list against the profile
// in order and reports true on the first satisfied trigger. Unrecognized
// condition kinds never satisfy.
func (r *Responder) ShouldAutoRespond(profile response.CandidateProfile, template response.Template) bool {
	scores := ScoreProfile(profile)

	for _, trigger := range template.Triggers {
		switch trigger.Condition {
		case response.ConditionSkillMatch:
			if threshold, ok := floatValue(trigger.Value); ok && scores.Skill >= threshold {
				return true
			}
		case response.ConditionLocationMatch:
			if want, ok := trigger.Value.(bool); ok && want && profile.Location != "" {
				return true
			}
		case response.ConditionAvailability:
			if want, ok := trigger.Value.(string); ok && want == "immediate" && profile.Availability.Immediate {
				return true
			}
		case response.ConditionVerification:
			if want, ok := trigger.Value.(bool); ok && profile.Verified == want {
				return true
			}
		}
	}
	return false
}

// floatValue coerces trigger thresholds that arrive as JSON numbers or Go
// ints into float64.
func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
