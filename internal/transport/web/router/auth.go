package router

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

const auth0AuthHeaderPrefix = "Bearer auth0|"

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	Viewer domain.Viewer
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
// Requests with no matching credentials pass through as anonymous;
// endpoints that need a signed-in viewer assert that separately.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":"%s"}`, err.Error())
					return
				}

				ctx := domain.ContextWithViewer(r.Context(), result.Viewer)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ViewerClaims are the custom claims the platform issues alongside the
// registered set. Subscription status and role are stamped into the
// token at sign-in, so entitlement is resolved once per session rather
// than per request.
type ViewerClaims struct {
	SubscriptionStatus string `json:"subscription_status"`
	Role               string `json:"role"`
}

func (c *ViewerClaims) Validate(_ context.Context) error {
	return nil
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &ViewerClaims{}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len(auth0AuthHeaderPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		return &AuthResult{
			Viewer: viewerFromClaims(claims),
		}, nil
	}, nil
}

func viewerFromClaims(claims *validator.ValidatedClaims) domain.Viewer {
	viewer := domain.Viewer{
		ID:           claims.RegisteredClaims.Subject,
		Subscription: domain.SubscriptionInactive,
		Role:         domain.RoleViewer,
	}

	custom, ok := claims.CustomClaims.(*ViewerClaims)
	if !ok {
		return viewer
	}

	if custom.SubscriptionStatus == string(domain.SubscriptionActive) {
		viewer.Subscription = domain.SubscriptionActive
	}
	if custom.Role == string(domain.RoleAdmin) {
		viewer.Role = domain.RoleAdmin
	}

	return viewer
}
