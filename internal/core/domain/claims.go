package domain

import "context"

// Claims is the decoded payload of an identity token. It is reproduced
// verbatim from what was signed and only the email entry carries meaning.
type Claims map[string]any

// Email returns the identity email, or "" when absent or not a string.
func (c Claims) Email() string {
	email, _ := c["email"].(string)
	return email
}

type claimsKey struct{}

// ContextWithClaims binds verified claims to ctx.
func ContextWithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims bound by the identity middleware.
// ok is false when nothing was bound or the bound claims carry no email.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(Claims)
	if !ok || claims.Email() == "" {
		return nil, false
	}
	return claims, true
}
