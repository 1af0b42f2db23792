package campaign

// DefaultPlatforms returns the seed platform registry: every supported
// platform disabled, with its standing posting schedule.
func DefaultPlatforms() []Platform {
	return []Platform{
		{
			ID:      "facebook",
			Name:    PlatformFacebook,
			Enabled: false,
			Settings: PlatformSettings{
				ScheduledTimes: []string{"09:00", "14:00", "18:00"},
				Hashtags:       HashtagAuto,
			},
		},
		{
			ID:      "twitter",
			Name:    PlatformTwitter,
			Enabled: false,
			Settings: PlatformSettings{
				ScheduledTimes: []string{"08:00", "12:00", "16:00", "20:00"},
				Hashtags:       HashtagAuto,
			},
		},
		{
			ID:      "instagram",
			Name:    PlatformInstagram,
			Enabled: false,
			Settings: PlatformSettings{
				ScheduledTimes: []string{"10:00", "15:00", "19:00"},
				Hashtags:       HashtagAuto,
			},
		},
		{
			ID:      "linkedin",
			Name:    PlatformLinkedIn,
			Enabled: false,
			Settings: PlatformSettings{
				ScheduledTimes: []string{"09:00", "13:00", "17:00"},
				Hashtags:       HashtagCustom,
				CustomHashtags: []string{"#Jobs", "#Professional", "#DisasterRelief"},
			},
		},
		{
			ID:      "tiktok",
			Name:    PlatformTikTok,
			Enabled: false,
			Settings: PlatformSettings{
				ScheduledTimes: []string{"11:00", "16:00", "21:00"},
				Hashtags:       HashtagAuto,
			},
		},
	}
}
