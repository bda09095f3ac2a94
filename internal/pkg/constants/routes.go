package constants

// Static route constants
const (
	APIRoute         = "/api"
	HealthRoute      = "/api/health"
	WebhookRoute     = "/api/auth/hotmart/webhook"
	RequestLinkRoute = "/api/auth/request-link"
	VerifyRoute      = "/api/auth/verify"
	MeRoute          = "/api/auth/me"
	PageFallback     = "/*"
)
