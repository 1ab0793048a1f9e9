package security

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var ErrGoogleSignInDisabled = errors.New("google sign-in is not configured")

// GoogleIdentity is the subset of a Google ID token the API relies on.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	FirstName     string
	LastName      string
}

type GoogleVerifier interface {
	// Verify validates a Google ID token against the configured client ID.
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

type idTokenVerifier struct {
	clientID string
	validate func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewGoogleVerifier validates tokens issued for clientID. An empty clientID
// disables Google sign-in.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	if clientID == "" {
		return DisabledGoogleVerifier{}
	}
	return &idTokenVerifier{clientID: clientID, validate: idtoken.Validate}
}

func (v *idTokenVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "validate google id token")
	}
	return identityFromPayload(payload), nil
}

func identityFromPayload(payload *idtoken.Payload) *GoogleIdentity {
	id := &GoogleIdentity{Subject: payload.Subject}
	id.Email, _ = payload.Claims["email"].(string)
	id.FirstName, _ = payload.Claims["given_name"].(string)
	id.LastName, _ = payload.Claims["family_name"].(string)
	switch v := payload.Claims["email_verified"].(type) {
	case bool:
		id.EmailVerified = v
	case string:
		id.EmailVerified = v == "true"
	}
	return id
}

// DisabledGoogleVerifier rejects every token.
type DisabledGoogleVerifier struct{}

func (DisabledGoogleVerifier) Verify(context.Context, string) (*GoogleIdentity, error) {
	return nil, ErrGoogleSignInDisabled
}
