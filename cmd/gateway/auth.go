package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

const adminRole = "admin"

// devUserHeader and devRoleHeader carry the caller identity when JWT_SECRET is unset.
const (
	devUserHeader = "X-User-Id"
	devRoleHeader = "X-User-Role"
)

type tokenClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// requireUser resolves the caller from an HS256 bearer token. The subject
// becomes the cart owner and the optional role claim is kept for requireAdmin.
// With an empty secret it trusts devUserHeader and devRoleHeader instead.
func requireUser(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		if secret == "" {
			uid := strings.TrimSpace(c.GetHeader(devUserHeader))
			if uid == "" {
				respondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", devUserHeader+" header required")
				return
			}
			c.Set(ctxUserID, uid)
			c.Set(ctxRole, strings.TrimSpace(c.GetHeader(devRoleHeader)))
			c.Next()
			return
		}

		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			respondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", "missing or invalid token")
			return
		}

		claims, err := parseToken(raw, key)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", err.Error())
			return
		}

		c.Set(ctxUserID, claims.Subject)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// requireAdmin must run after requireUser.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != adminRole {
			respondError(c, http.StatusForbidden, "PERMISSION_DENIED", "admin privileges required")
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

func parseToken(raw string, key []byte) (tokenClaims, error) {
	claims := tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return tokenClaims{}, err
	}

	claims.Subject = strings.TrimSpace(claims.Subject)
	if claims.Subject == "" {
		return tokenClaims{}, errors.New("token has no subject")
	}
	return claims, nil
}

func userID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
