package constants

// Context keys
const (
	ContextKeyRequestID = "request_id"
)

// Headers
const (
	HeaderRequestID = "X-Request-ID"
)

// Dashboard limits
const (
	RecentProjectsLimit = 6
	MaxAIGeneratedTasks = 20
)

// RoleSuggestions lists the roles offered when adding a team member.
// Roles are free-form; this list is only a suggestion.
var RoleSuggestions = []string{
	"Project Manager",
	"Senior Developer",
	"Frontend Developer",
	"Backend Developer",
	"UX Designer",
	"UI Designer",
	"DevOps Engineer",
	"QA Engineer",
	"Data Analyst",
	"Technical Lead",
	"Security Specialist",
	"Mobile Developer",
}
