package responder

import (
	"reliefreach/domain/core"
	"reliefreach/domain/response"
)

// Canonical template ids. The selection rules in SelectTemplate always
// resolve to one of these three.
const (
	TemplateUrgent   core.TemplateID = "urgent_response"
	TemplateStandard core.TemplateID = "standard_response"
	TemplateFollowUp core.TemplateID = "follow_up"
)

// defaultTemplates seeds the registry at startup. The bodies keep the
// coordination team's standing copy; edits go through the CRUD operations.
func defaultTemplates() []response.Template {
	return []response.Template{
		{
			ID:      TemplateUrgent,
			Name:    "Urgent Disaster Response",
			Subject: "URGENT: Your Skills Needed for Disaster Relief",
			Body: `Dear {{name}},

Thank you for expressing interest in our disaster relief efforts. Based on your profile showing skills in {{skills}}, you're exactly what we need for our {{location}} operations.

🚨 IMMEDIATE NEED:
- Location: {{location}}
- Skills Required: {{required_skills}}
- Duration: {{duration}}
- Compensation: {{compensation}}

Due to the urgent nature of this situation, we can fast-track your application. Please reply within 2 hours if you're available to start immediately.

Contact Information:
{{contact_info}}

Thank you for your willingness to help during this critical time.

Best regards,
Disaster Relief Coordination Team`,
			Variables: []string{"name", "skills", "location", "required_skills", "duration", "compensation", "contact_info"},
			Triggers: []response.Trigger{
				{Condition: response.ConditionSkillMatch, Value: 0.8, Action: response.ActionSendAutoResponse},
				{Condition: response.ConditionLocationMatch, Value: true, Action: response.ActionSendAutoResponse},
				{Condition: response.ConditionAvailability, Value: "immediate", Action: response.ActionSendAutoResponse},
			},
		},
		{
			ID:      TemplateStandard,
			Name:    "Standard Job Response",
			Subject: "Application Received - {{job_title}}",
			Body: `Hello {{name}},

We've received your application for {{job_title}} in our disaster relief operations. Your background in {{skills}} looks promising for our needs.

Next Steps:
1. Application review (24-48 hours)
2. Skills verification
3. Interview scheduling
4. Background check
5. Assignment coordination

We'll be in touch soon with updates on your application status.

If you have any immediate questions, please contact:
{{contact_info}}

Thank you for your interest in helping our community recover.

Sincerely,
HR Team`,
			Variables: []string{"name", "job_title", "skills", "contact_info"},
			Triggers: []response.Trigger{
				{Condition: response.ConditionVerification, Value: true, Action: response.ActionScheduleInterview},
				{Condition: response.ConditionSkillMatch, Value: 0.6, Action: response.ActionSendAutoResponse},
			},
		},
		{
			ID:      TemplateFollowUp,
			Name:    "Follow-up Response",
			Subject: "Follow-up: Your Disaster Relief Application",
			Body: `Hi {{name}},

We wanted to follow up on your application for disaster relief work. We noticed you have experience in {{previous_experience}} which could be valuable.

Current opportunities that might interest you:
- {{available_positions}}

If you're still interested and available, please let us know:
1. Your current availability
2. Preferred work locations
3. Any additional skills or certifications

We're committed to matching skilled individuals with urgent community needs.

Best regards,
Coordination Team`,
			Variables: []string{"name", "previous_experience", "available_positions"},
			Triggers: []response.Trigger{
				{Condition: response.ConditionSkillMatch, Value: 0.5, Action: response.ActionSendAutoResponse},
			},
		},
	}
}

// Templates returns a copy of the registry in priority order
func (r *Responder) Templates() []response.Template {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]response.Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// ReplaceTemplates swaps the registry contents for a stored set. Used at
// startup to hydrate from a durable copy; an empty set is ignored so the
// defaults survive a cold start.
func (r *Responder) ReplaceTemplates(templates []response.Template) {
	if len(templates) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates = make([]response.Template, len(templates))
	copy(r.templates, templates)
}

// TemplateByID returns the template with the given id, or nil
func (r *Responder) TemplateByID(id core.TemplateID) *response.Template {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.templateByIDLocked(id)
}

func (r *Responder) templateByIDLocked(id core.TemplateID) *response.Template {
	for i := range r.templates {
		if r.templates[i].ID == id {
			t := r.templates[i]
			return &t
		}
	}
	return nil
}

// CreateTemplate registers a new template under a fresh id
func (r *Responder) CreateTemplate(t response.Template) response.Template {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = core.TemplateID(core.NewID())
	r.templates = append(r.templates, t)
	return t
}

// UpdateTemplate shallow-merges the set fields into an existing template.
// Returns nil when the id is unknown.
func (r *Responder) UpdateTemplate(id core.TemplateID, update response.TemplateUpdate) *response.Template {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.templates {
		if r.templates[i].ID != id {
			continue
		}
		t := &r.templates[i]
		if update.Name != nil {
			t.Name = *update.Name
		}
		if update.Subject != nil {
			t.Subject = *update.Subject
		}
		if update.Body != nil {
			t.Body = *update.Body
		}
		if update.Variables != nil {
			t.Variables = *update.Variables
		}
		if update.Triggers != nil {
			t.Triggers = *update.Triggers
		}
		merged := *t
		return &merged
	}
	return nil
}

// DeleteTemplate removes a template by id. Idempotent: reports whether a
// template was actually removed.
func (r *Responder) DeleteTemplate(id core.TemplateID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.templates {
		if r.templates[i].ID == id {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return true
		}
	}
	return false
}
