package entity

// AlertSettings are the user's location alert preferences.
type AlertSettings struct {
	MasterEnabled bool    `json:"masterEnabled"`
	RadiusMiles   float64 `json:"radiusMiles"`
}

// PermissionStatus is the device's location permission state as last reported.
type PermissionStatus struct {
	Foreground bool `json:"foreground"`
	Background bool `json:"background"`
}

// Granted reports whether region monitoring may run.
func (p PermissionStatus) Granted() bool {
	return p.Foreground && p.Background
}
