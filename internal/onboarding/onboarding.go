// Package onboarding derives navigation decisions from application state.
// Every function is a pure derivation over a state snapshot so routing can
// be re-evaluated after any store mutation without tracking events.
package onboarding

import "github.com/lee777maker/Job-Applier-sub000/internal/types"

// Route paths recognized by the router.
const (
	PathLogin            = "/login"
	PathSignup           = "/signup"
	PathUploadCV         = "/upload-cv"
	PathPreferences      = "/preferences"
	PathHome             = "/home"
	PathDashboard        = "/dashboard"
	PathPastApplications = "/past-applications"
)

var publicPaths = map[string]bool{
	PathLogin:  true,
	PathSignup: true,
}

var mainAppPaths = map[string]bool{
	PathHome:             true,
	PathDashboard:        true,
	PathPastApplications: true,
}

// Snapshot is the subset of application state the router reads.
type Snapshot struct {
	IsLoading       bool
	IsAuthenticated bool
	Profile         *types.UserProfile
	JobPreferences  *types.JobPreferences
}

// Stage identifies where the user sits in the onboarding flow.
type Stage string

const (
	StageLoading          Stage = "loading"
	StageUnauthenticated  Stage = "unauthenticated"
	StageNeedsCV          Stage = "needs-cv"
	StageNeedsPreferences Stage = "needs-preferences"
	StageReady            Stage = "ready"
)

// Decision is the outcome of evaluating a path against a snapshot.
// While Loading is set no navigation should happen at all.
type Decision struct {
	Allow    bool
	Redirect string
	Loading  bool
}

func hasCV(s Snapshot) bool {
	return s.Profile != nil && s.Profile.HasResume()
}

func hasPreferences(s Snapshot) bool {
	return s.JobPreferences != nil && s.JobPreferences.Complete()
}

// CurrentStage classifies the snapshot into a single onboarding stage.
func CurrentStage(s Snapshot) Stage {
	switch {
	case s.IsLoading:
		return StageLoading
	case !s.IsAuthenticated:
		return StageUnauthenticated
	case !hasCV(s):
		return StageNeedsCV
	case !hasPreferences(s):
		return StageNeedsPreferences
	default:
		return StageReady
	}
}

// Evaluate decides whether currentPath may be shown for the given snapshot.
// Rules apply in order: loading wins over everything, unauthenticated users
// are sent to login unless the path is public, then CV and preference
// prerequisites gate the onboarding and main-app paths.
func Evaluate(s Snapshot, currentPath string) Decision {
	if s.IsLoading {
		return Decision{Loading: true}
	}
	if !s.IsAuthenticated {
		if publicPaths[currentPath] {
			return Decision{Allow: true}
		}
		return Decision{Redirect: PathLogin}
	}
	if !hasCV(s) && currentPath != PathUploadCV {
		return Decision{Redirect: PathUploadCV}
	}
	if hasCV(s) && !hasPreferences(s) && mainAppPaths[currentPath] {
		return Decision{Redirect: PathPreferences}
	}
	return Decision{Allow: true}
}

// PostLogin picks the landing path right after a successful login or signup.
// Unlike Evaluate it is path-insensitive and always resolves to one of the
// three onboarding destinations.
func PostLogin(s Snapshot) string {
	switch {
	case !hasCV(s):
		return PathUploadCV
	case !hasPreferences(s):
		return PathPreferences
	default:
		return PathHome
	}
}
