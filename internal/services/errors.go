package services

// Kind classifies a service failure. Handlers map kinds to HTTP status codes.
type Kind string

const (
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindForbidden       Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindValidation      Kind = "VALIDATION"
	KindInternal        Kind = "INTERNAL"
)

// Error is the only error type services return for expected failures.
// Anything else reaching a handler is treated as internal.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is lets the bare kind sentinels below match any error of the same kind,
// while specific errors only match themselves.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message == "" {
		return e.Kind == t.Kind
	}
	return e == t
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Kind sentinels
var (
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated}
	ErrForbidden       = &Error{Kind: KindForbidden}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrConflict        = &Error{Kind: KindConflict}
	ErrValidation      = &Error{Kind: KindValidation}
	ErrInternal        = &Error{Kind: KindInternal}
)

// Identity
var (
	ErrEmailTaken         = newError(KindConflict, "email already registered")
	ErrInvalidCredentials = newError(KindUnauthenticated, "invalid email or password")
	ErrInvalidToken       = newError(KindUnauthenticated, "invalid or expired token")
	ErrInvalidGoogleToken = newError(KindUnauthenticated, "invalid Google credential")
	ErrEmailRequired      = newError(KindValidation, "email is required")
	ErrPasswordTooShort   = newError(KindValidation, "password too short")
	ErrInvalidRole        = newError(KindValidation, "invalid role")
	ErrAdminSelfAssign    = newError(KindValidation, "the ADMIN role cannot be self-assigned")
	ErrUserNotFound       = newError(KindNotFound, "user not found")

	ErrGoogleCredentialRequired = newError(KindValidation, "credential is required")
	ErrGoogleSignInDisabled     = newError(KindValidation, "Google sign-in is not configured")
)

// Organization
var (
	ErrOrganizationNotFound    = newError(KindNotFound, "organization not found")
	ErrInvalidOrganizationName = newError(KindValidation, "organization name cannot be empty")
	ErrInvalidSlug             = newError(KindValidation, "slug must contain only lowercase letters, digits and single hyphens")
	ErrInvalidPlan             = newError(KindValidation, "invalid plan")
	ErrSlugTaken               = newError(KindConflict, "organization slug already taken")
	ErrAlreadyHasOrganization  = newError(KindConflict, "you already belong to an organization")
	ErrOrganizationLinkFailed  = newError(KindInternal, "organization could not be linked to its creator and was not created")
	ErrRecruiterOnly           = newError(KindForbidden, "only recruiters can perform this action")
	ErrOrganizationManagerOnly = newError(KindForbidden, "only recruiters or admins can manage organizations")
	ErrNotOrganizationMember   = newError(KindForbidden, "you are not a member of this organization")
	ErrCannotGrantAdmin        = newError(KindForbidden, "the ADMIN role cannot be granted by a recruiter")
	ErrMemberNotFound          = newError(KindNotFound, "member not found")
	ErrTargetNotMember         = newError(KindForbidden, "user is not a member of this organization")
	ErrAlreadyMember           = newError(KindConflict, "user is already part of this organization")
	ErrMemberOfAnotherOrg      = newError(KindConflict, "user belongs to another organization")
	ErrCannotRemoveYourself    = newError(KindValidation, "cannot remove yourself from the organization")
	ErrCannotChangeOwnRole     = newError(KindValidation, "cannot change your own role")
)

// Job
var (
	ErrJobNotFound            = newError(KindNotFound, "job not found")
	ErrJobOwnerOnly           = newError(KindForbidden, "only the recruiter who created this job can modify it")
	ErrNoOrganization         = newError(KindForbidden, "you must belong to an organization to post jobs")
	ErrJobTitleRequired       = newError(KindValidation, "title is required")
	ErrJobDescriptionRequired = newError(KindValidation, "description is required")
	ErrInvalidVisibility      = newError(KindValidation, "visibility must be PUBLIC or PRIVATE")
	ErrInvalidJobStatus       = newError(KindValidation, "status must be DRAFT, ONGOING or CLOSED")
	ErrJobTransition          = newError(KindConflict, "job status transition not allowed")
)

// Application
var (
	ErrApplicationNotFound      = newError(KindNotFound, "application not found")
	ErrCandidateOnly            = newError(KindForbidden, "only candidates can perform this action")
	ErrApplicationForbidden     = newError(KindForbidden, "you cannot access this application")
	ErrJobNotAccepting          = newError(KindValidation, "job is not accepting applications")
	ErrAlreadyApplied           = newError(KindConflict, "you have already applied to this job")
	ErrInvalidApplicationStatus = newError(KindValidation, "invalid application status")
	ErrApplicationTransition    = newError(KindConflict, "application status transition not allowed")
)

// Dashboard
var ErrDashboardForbidden = newError(KindForbidden, "only recruiters or admins can view the dashboard")
