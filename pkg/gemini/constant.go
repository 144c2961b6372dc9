package gemini

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultLocation is the default Vertex AI region
	DefaultLocation = "us-central1"

	// cloudPlatformScope is requested for service-account credentials on Vertex AI
	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)
