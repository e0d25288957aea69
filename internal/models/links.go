package models

import (
	"time"
)

// Platform identifies a social network a profile can link to.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformGitHub    Platform = "github"
	PlatformDiscord   Platform = "discord"
	PlatformTwitch    Platform = "twitch"
	PlatformSpotify   Platform = "spotify"
)

// AllPlatforms returns all supported social platforms.
func AllPlatforms() []Platform {
	return []Platform{
		PlatformTwitter,
		PlatformInstagram,
		PlatformFacebook,
		PlatformLinkedIn,
		PlatformYouTube,
		PlatformTikTok,
		PlatformGitHub,
		PlatformDiscord,
		PlatformTwitch,
		PlatformSpotify,
	}
}

// IsValid reports whether p is one of the supported platforms.
func (p Platform) IsValid() bool {
	for _, known := range AllPlatforms() {
		if p == known {
			return true
		}
	}
	return false
}

// TemplateStyle selects the visual template for the public link page.
type TemplateStyle string

const (
	TemplateClassic  TemplateStyle = "classic"
	TemplateModern   TemplateStyle = "modern"
	TemplateMinimal  TemplateStyle = "minimal"
	TemplateGradient TemplateStyle = "gradient"
)

// AllTemplateStyles returns all supported page templates.
func AllTemplateStyles() []TemplateStyle {
	return []TemplateStyle{
		TemplateClassic,
		TemplateModern,
		TemplateMinimal,
		TemplateGradient,
	}
}

// IsValid reports whether t is one of the supported templates.
func (t TemplateStyle) IsValid() bool {
	for _, known := range AllTemplateStyles() {
		if t == known {
			return true
		}
	}
	return false
}

// Link is a user-authored entry on the link page. Order defines display
// sequence; sorting is by order value, so a gap left by a delete is
// harmless until the next reorder renumbers everything.
type Link struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	Clicks    int       `json:"clicks"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SocialLink is one social-platform entry embedded in the profile.
type SocialLink struct {
	ID       string   `json:"id"`
	Platform Platform `json:"platform"`
	URL      string   `json:"url"`
	IsActive bool     `json:"isActive"`
}

// UserProfile is the singleton profile of the link page owner.
type UserProfile struct {
	Username       string        `json:"username"`
	DisplayName    string        `json:"displayName"`
	Bio            string        `json:"bio"`
	AvatarURL      string        `json:"avatarUrl"`
	Theme          string        `json:"theme"`
	PrimaryColor   string        `json:"primaryColor"`
	SecondaryColor string        `json:"secondaryColor"`
	FontFamily     string        `json:"fontFamily"`
	TemplateStyle  TemplateStyle `json:"templateStyle"`
	SocialLinks    []SocialLink  `json:"socialLinks"`
}

// DefaultProfile returns the profile a fresh store starts with.
func DefaultProfile() UserProfile {
	return UserProfile{
		Username:       "mylinks",
		DisplayName:    "My Name",
		Bio:            "Welcome to my link page!",
		AvatarURL:      "",
		Theme:          "light",
		PrimaryColor:   "#0ea5e9",
		SecondaryColor: "#06b6d4",
		FontFamily:     "Inter",
		TemplateStyle:  TemplateClassic,
		SocialLinks:    []SocialLink{},
	}
}

type AddLinkRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

// UpdateLinkRequest carries a partial link edit; nil fields are left
// untouched by the merge.
type UpdateLinkRequest struct {
	Title    *string `json:"title"`
	URL      *string `json:"url"`
	IsActive *bool   `json:"isActive"`
}

// ReorderLinksRequest lists every link id in its new display sequence.
type ReorderLinksRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// UpdateProfileRequest carries a partial profile edit.
type UpdateProfileRequest struct {
	Username       *string        `json:"username"`
	DisplayName    *string        `json:"displayName"`
	Bio            *string        `json:"bio"`
	AvatarURL      *string        `json:"avatarUrl"`
	Theme          *string        `json:"theme"`
	PrimaryColor   *string        `json:"primaryColor"`
	SecondaryColor *string        `json:"secondaryColor"`
	FontFamily     *string        `json:"fontFamily"`
	TemplateStyle  *TemplateStyle `json:"templateStyle"`
}

type AddSocialLinkRequest struct {
	Platform Platform `json:"platform" binding:"required"`
	URL      string   `json:"url" binding:"required"`
}

type UpdateSocialLinkRequest struct {
	Platform *Platform `json:"platform"`
	URL      *string   `json:"url"`
	IsActive *bool     `json:"isActive"`
}
