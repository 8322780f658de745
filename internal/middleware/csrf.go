package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	csrfCookieName = "csrf_token"
	csrfContextKey = "csrf_token"

	// CSRFFormField is the hidden form field carrying the token
	CSRFFormField = "csrf_token"
)

// CSRFMiddleware makes sure every visitor holds a signed token cookie.
// Forms echo the token in a hidden field and handlers check it with ValidCSRF.
func CSRFMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := getTokenFromCookie(c, secret)
		if token == "" {
			token = newCSRFToken(secret)
			c.SetCookie(csrfCookieName, token, 86400, "/", "", false, true)
		}

		c.Set(csrfContextKey, token)
		c.Next()
	}
}

// getTokenFromCookie returns the cookie token when its signature is valid
func getTokenFromCookie(c *gin.Context, secret string) string {
	cookie, err := c.Cookie(csrfCookieName)
	if err != nil {
		return ""
	}

	// Split cookie value (signature.nonce)
	parts := strings.Split(cookie, ".")
	if len(parts) != 2 {
		return ""
	}

	signature, nonce := parts[0], parts[1]
	if !verifySignature(secret, nonce, signature) {
		return ""
	}
	return cookie
}

func newCSRFToken(secret string) string {
	nonce := base64.RawURLEncoding.EncodeToString([]byte(uuid.NewString()))
	return createSignature(secret, nonce) + "." + nonce
}

// createSignature creates HMAC signature for data
func createSignature(secret, data string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// verifySignature verifies HMAC signature
func verifySignature(secret, data, signature string) bool {
	expectedSignature := createSignature(secret, data)
	return hmac.Equal([]byte(signature), []byte(expectedSignature))
}

// GetCSRFToken returns the token to embed in forms
func GetCSRFToken(c *gin.Context) string {
	token, exists := c.Get(csrfContextKey)
	if !exists {
		return ""
	}
	if value, ok := token.(string); ok {
		return value
	}
	return ""
}

// ValidCSRF reports whether the submitted form field matches the visitor's cookie token
func ValidCSRF(c *gin.Context) bool {
	expected := GetCSRFToken(c)
	submitted := c.PostForm(CSRFFormField)
	if expected == "" || submitted == "" {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(submitted))
}
