package model

import "time"

// NotificationKind identifies which failure produced a notification
type NotificationKind string

const (
	KindCityNotFound           NotificationKind = "city-not-found"
	KindGeolocationUnsupported NotificationKind = "geolocation-unsupported"
	KindLocationDenied         NotificationKind = "location-denied"
	KindLocationFetchFailed    NotificationKind = "location-fetch-failed"
)

// NotificationVariant is the severity flag used by the client when rendering
type NotificationVariant string

const (
	VariantDefault     NotificationVariant = "default"
	VariantDestructive NotificationVariant = "destructive"
)

// Notification is an ephemeral user-facing message
type Notification struct {
	Kind        NotificationKind    `json:"kind"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
	CreatedAt   time.Time           `json:"createdAt"`
}
