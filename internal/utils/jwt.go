package utils // package utils provides helper functions for token creation and hashing

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"
)

// Token type discriminators.  The codec signs access and refresh tokens with
// the same key, so every token carries a "typ" claim and verification
// rejects a token presented for the wrong purpose.
const (
    TokenTypeAccess  = "access"
    TokenTypeRefresh = "refresh"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, expiry in the past, or wrong token type.  Callers never
// need to distinguish; they all map to the same rejection.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the signed claim set carried by both token kinds.  Access tokens
// populate Role and Email; refresh tokens carry only the subject and type.
type Claims struct {
    UserID uint64 `json:"userId"`
    Role   string `json:"role,omitempty"`
    Email  string `json:"email,omitempty"`
    Type   string `json:"typ"`
    jwt.RegisteredClaims
}

// SignedToken pairs a serialized JWT with its absolute expiry so callers can
// persist or report the expiry without re-parsing the token.
type SignedToken struct {
    Token string
    Exp   time.Time
}

// NewAccessToken builds and signs an HS256 JWT identifying a user for
// request authentication.  The claim set mirrors the identity attached to
// requests by the authentication middleware: userId, role and email.
func NewAccessToken(secret string, userID uint64, role, email string, ttl time.Duration) (SignedToken, error) {
    return sign(secret, Claims{
        UserID: userID,
        Role:   role,
        Email:  email,
        Type:   TokenTypeAccess,
    }, ttl)
}

// NewRefreshToken builds and signs the long-lived token used solely to mint
// new access tokens.  It is persisted server-side, so redemption requires
// both a stored record and a valid signature.
func NewRefreshToken(secret string, userID uint64, ttl time.Duration) (SignedToken, error) {
    return sign(secret, Claims{
        UserID: userID,
        Type:   TokenTypeRefresh,
    }, ttl)
}

func sign(secret string, claims Claims, ttl time.Duration) (SignedToken, error) {
    now := time.Now().UTC()
    exp := now.Add(ttl)
    claims.RegisteredClaims = jwt.RegisteredClaims{
        ID:        uuid.New().String(),
        IssuedAt:  jwt.NewNumericDate(now),
        ExpiresAt: jwt.NewNumericDate(exp),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SignedToken{}, err
    }
    return SignedToken{Token: signed, Exp: exp}, nil
}

// VerifyAccess validates an access token and returns its claims.
func VerifyAccess(secret, raw string) (*Claims, error) {
    return verify(secret, raw, TokenTypeAccess)
}

// VerifyRefresh validates a refresh token's signature independently of any
// database record.
func VerifyRefresh(secret, raw string) (*Claims, error) {
    return verify(secret, raw, TokenTypeRefresh)
}

func verify(secret, raw, wantType string) (*Claims, error) {
    claims := &Claims{}
    tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything but HMAC.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return nil, ErrInvalidToken
    }
    if claims.Type != wantType {
        return nil, ErrInvalidToken
    }
    return claims, nil
}
