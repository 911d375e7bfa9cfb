package types

const (
	ContextPrincipalKey = "principal"
	ContextProfileKey   = "profile_id"
)

// Default allowed origins for development
var DefaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

const (
	MaxResumeSize = 5 << 20
)
