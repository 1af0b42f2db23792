package ui

import (
	"reliefreach/app"
	"reliefreach/domain/core"
)

func appCreateRequest(body createCampaignBody) app.CreateCampaignRequest {
	return app.CreateCampaignRequest{
		Name:           body.Name,
		Description:    body.Description,
		Prompt:         body.Prompt,
		MediaType:      body.MediaType,
		Platforms:      body.Platforms,
		VariationCount: body.VariationCount,
		TargetAudience: body.TargetAudience,
		Job:            body.Job,
	}
}

func appStartRequest(campaignID core.CampaignID, body startExperimentBody) app.StartExperimentRequest {
	return app.StartExperimentRequest{
		CampaignID:    campaignID,
		DurationHours: body.DurationHours,
		Criterion:     body.Criterion,
	}
}
