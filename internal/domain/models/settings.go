package models

// UserSettings holds per-user dashboard preferences and the optional email
// sending configuration. EmailPassword is stored AES-encrypted and is never
// serialized back to the client.
type UserSettings struct {
	UserID        string `json:"userId" bson:"userId"`
	Notifications bool   `json:"notifications" bson:"notifications"`
	DarkMode      bool   `json:"darkMode" bson:"darkMode"`
	Language      string `json:"language" bson:"language"`
	Timezone      string `json:"timezone" bson:"timezone"`
	EmailAddress  string `json:"emailAddress,omitempty" bson:"emailAddress,omitempty"`
	EmailPassword string `json:"-" bson:"emailPassword,omitempty"`
}

// DefaultSettings returns the settings served for a user who has never
// saved any.
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:        userID,
		Notifications: true,
		DarkMode:      false,
		Language:      "en",
		Timezone:      "UTC",
	}
}
