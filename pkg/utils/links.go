package utils

import "net/url"

// AvatarURL returns a deterministic placeholder avatar for an email.
func AvatarURL(email string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(email)
}

// ThumbnailURL returns a stock thumbnail lookup for a destination.
func ThumbnailURL(destination string) string {
	return "https://images.unsplash.com/search/photos?query=" + url.QueryEscape(destination) + "&w=400&h=250&fit=crop"
}
