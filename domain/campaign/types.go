package campaign

import (
	"reliefreach/domain/core"
)

// Status tracks a campaign through its lifecycle
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Campaign is a recruitment marketing campaign targeting a disaster area
type Campaign struct {
	ID             core.CampaignID `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Status         Status          `json:"status"`
	CreatedAt      core.Timestamp  `json:"created_at"`
	ScheduledAt    *core.Timestamp `json:"scheduled_at,omitempty"`
	Platforms      []Platform      `json:"platforms"`
	Content        ContentPlan     `json:"content"`
	Analytics      Analytics       `json:"analytics"`
	TargetAudience TargetAudience  `json:"target_audience"`
	Job            *JobPosting     `json:"job_posting,omitempty"`
}

// PlatformName identifies a supported social platform
type PlatformName string

const (
	PlatformFacebook  PlatformName = "facebook"
	PlatformTwitter   PlatformName = "twitter"
	PlatformInstagram PlatformName = "instagram"
	PlatformLinkedIn  PlatformName = "linkedin"
	PlatformTikTok    PlatformName = "tiktok"
)

// Platform is one distribution channel attached to a campaign
type Platform struct {
	ID          string           `json:"id"`
	Name        PlatformName     `json:"name"`
	Enabled     bool             `json:"enabled"`
	Credentials *Credentials     `json:"credentials,omitempty"`
	Settings    PlatformSettings `json:"settings"`
}

// Credentials holds platform API tokens
type Credentials struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	ExpiresAt    *core.Timestamp `json:"expires_at,omitempty"`
}

// HashtagStrategy selects how hashtags are chosen for a platform
type HashtagStrategy string

const (
	HashtagAuto   HashtagStrategy = "auto"
	HashtagCustom HashtagStrategy = "custom"
)

// PlatformSettings holds per-platform posting preferences
type PlatformSettings struct {
	AutoPost       bool            `json:"auto_post"`
	ScheduledTimes []string        `json:"scheduled_times"`
	Hashtags       HashtagStrategy `json:"hashtag_strategy"`
	CustomHashtags []string        `json:"custom_hashtags,omitempty"`
}

// MediaType selects the kind of creative asset to generate
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaMixed MediaType = "mixed"
)

// ContentPlan describes what content a campaign generates and tests
type ContentPlan struct {
	Prompt     string             `json:"prompt"`
	MediaType  MediaType          `json:"media_type"`
	Generated  []GeneratedContent `json:"generated_content"`
	Variations []ContentVariation `json:"variations"`
}

// GeneratedContent is one creative asset produced by the content generator
type GeneratedContent struct {
	ID          core.ID        `json:"id"`
	Type        MediaType      `json:"type"`
	URL         string         `json:"url"`
	Caption     string         `json:"caption"`
	Hashtags    []string       `json:"hashtags"`
	Platform    string         `json:"platform"`
	GeneratedAt core.Timestamp `json:"generated_at"`
}

// ContentVariation groups assets into one arm of a content experiment
type ContentVariation struct {
	ID      core.VariantID     `json:"id"`
	Name    string             `json:"name"`
	Content []GeneratedContent `json:"content"`
}

// Analytics aggregates campaign performance across platforms
type Analytics struct {
	TotalReach        int64               `json:"total_reach"`
	TotalEngagement   int64               `json:"total_engagement"`
	TotalClicks       int64               `json:"total_clicks"`
	ConversionRate    float64             `json:"conversion_rate"`
	CostPerEngagement float64             `json:"cost_per_engagement"`
	PlatformBreakdown []PlatformAnalytics `json:"platform_breakdown"`
	TimeSeries        []TimeSeriesPoint   `json:"time_series_data"`
}

// PlatformAnalytics is per-platform performance
type PlatformAnalytics struct {
	Platform   string `json:"platform"`
	Reach      int64  `json:"reach"`
	Engagement int64  `json:"engagement"`
	Clicks     int64  `json:"clicks"`
	Shares     int64  `json:"shares"`
	Comments   int64  `json:"comments"`
	Saves      int64  `json:"saves"`
}

// TimeSeriesPoint is one day of campaign performance
type TimeSeriesPoint struct {
	Timestamp  core.Timestamp `json:"timestamp"`
	Reach      int64          `json:"reach"`
	Engagement int64          `json:"engagement"`
	Clicks     int64          `json:"clicks"`
}

// UrgencyLevel ranks how quickly positions must be filled
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

// TargetAudience describes who a campaign is trying to reach
type TargetAudience struct {
	Location     string       `json:"location"`
	Demographics Demographics `json:"demographics"`
	Disaster     DisasterType `json:"disaster_type"`
	Urgency      UrgencyLevel `json:"urgency_level"`
}

// Demographics narrows the audience by age, interests and occupation
type Demographics struct {
	AgeRange    [2]int   `json:"age_range"`
	Interests   []string `json:"interests"`
	Occupations []string `json:"occupation,omitempty"`
}

// DisasterKind enumerates the supported disaster categories
type DisasterKind string

const (
	DisasterHurricane  DisasterKind = "hurricane"
	DisasterEarthquake DisasterKind = "earthquake"
	DisasterFlood      DisasterKind = "flood"
	DisasterWildfire   DisasterKind = "wildfire"
	DisasterTornado    DisasterKind = "tornado"
	DisasterOther      DisasterKind = "other"
)

// DisasterType describes the event a campaign responds to
type DisasterType struct {
	Kind          DisasterKind `json:"type"`
	Description   string       `json:"description"`
	AffectedAreas []string     `json:"affected_areas"`
	EstimatedDays int          `json:"estimated_duration"`
}

// CompensationType selects how a posting pays
type CompensationType string

const (
	CompensationHourly  CompensationType = "hourly"
	CompensationDaily   CompensationType = "daily"
	CompensationProject CompensationType = "project"
)

// Compensation describes posting pay
type Compensation struct {
	Type     CompensationType `json:"type"`
	Amount   *float64         `json:"amount,omitempty"`
	Currency string           `json:"currency"`
}

// ContactInfo identifies who candidates should reach out to
type ContactInfo struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`
}

// JobCategory classifies a posting
type JobCategory struct {
	Primary   string   `json:"primary"`
	Secondary string   `json:"secondary,omitempty"`
	Tags      []string `json:"tags"`
}

// JobPosting is the relief position a campaign recruits for. Its fields feed
// placeholder substitution in auto responses; all of them are optional there.
type JobPosting struct {
	ID                core.ID       `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Requirements      []string      `json:"requirements"`
	Location          string        `json:"location"`
	Urgency           UrgencyLevel  `json:"urgency"`
	EstimatedDuration string        `json:"estimated_duration"`
	Compensation      *Compensation `json:"compensation,omitempty"`
	Contact           *ContactInfo  `json:"contact_info,omitempty"`
	Skills            []string      `json:"skills"`
	Category          *JobCategory  `json:"category,omitempty"`
}
