package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`

	// Bearer token verification
	// Issuer and audience default to the Firebase project's values
	AuthJWKSURL  string `envconfig:"AUTH_JWKS_URL"`
	AuthIssuer   string `envconfig:"AUTH_ISSUER"`
	AuthAudience string `envconfig:"AUTH_AUDIENCE"`

	// Language preference cookie
	LanguageCookieName   string `envconfig:"LANGUAGE_COOKIE_NAME" default:"lang"`
	LanguageCookieMaxAge int    `envconfig:"LANGUAGE_COOKIE_MAX_AGE_SEC" default:"31536000"` // 1 year

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes

	// Deposit exports
	ExportBucket string `envconfig:"EXPORT_BUCKET"`

	// Firebase client settings, shared with the web and mobile builds
	FirebaseAPIKey            string `envconfig:"FIREBASE_API_KEY"`
	FirebaseAuthDomain        string `envconfig:"FIREBASE_AUTH_DOMAIN"`
	FirebaseProjectID         string `envconfig:"FIREBASE_PROJECT_ID"`
	FirebaseStorageBucket     string `envconfig:"FIREBASE_STORAGE_BUCKET"`
	FirebaseMessagingSenderID string `envconfig:"FIREBASE_MESSAGING_SENDER_ID"`
	FirebaseAppID             string `envconfig:"FIREBASE_APP_ID"`

	// Local emulators
	UseEmulators          bool   `envconfig:"USE_FIREBASE_EMULATORS"`
	EmulatorHost          string `envconfig:"EMULATOR_HOST" default:"localhost"`
	AuthEmulatorPort      uint   `envconfig:"AUTH_EMULATOR_PORT" default:"9099"`
	FirestoreEmulatorPort uint   `envconfig:"FIRESTORE_EMULATOR_PORT" default:"8081"`
	FunctionsEmulatorPort uint   `envconfig:"FUNCTIONS_EMULATOR_PORT" default:"5001"`
	StorageEmulatorPort   uint   `envconfig:"STORAGE_EMULATOR_PORT" default:"9199"`
	FunctionsRegion       string `envconfig:"FUNCTIONS_REGION" default:"us-central1"`
	DevProxyPort          uint   `envconfig:"DEV_PROXY_PORT" default:"5173"`
}
