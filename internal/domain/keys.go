package domain

// Persisted key-value entries. The keys are part of the storage contract and
// must not change between releases.
const (
	KeyDeviceID  = "device-unique-id"
	KeyPinClicks = "user-pin-clicks"
	KeyLanguage  = "app-language"
)
