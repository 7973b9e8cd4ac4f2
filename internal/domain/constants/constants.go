// Package constants holds string identifiers shared across configuration and wiring.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"
)

// Pub/Sub providers for region event transport.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers for the durable key-value store.
const (
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Local notification providers.
const (
	NotificationProviderFirebase = "firebase"
	NotificationProviderLog      = "log"
)

// Durable key layout shared by the API process and the geo worker.
const (
	KeyGeofences          = "geofences"
	KeyCooldownPrefix     = "geofence_cooldown:"
	KeyAlertSettings      = "alert_settings"
	KeyLocationPermission = "location_permission"
)
