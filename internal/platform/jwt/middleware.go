package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"petmatch_backend/internal/api"
)

// ContextIdentity is the gin context key holding the decoded *Identity.
const ContextIdentity = "identity"

// AuthRequired returns a gin middleware that requires a valid bearer
// token, decodes it, and attaches the identity to the request context.
// This is the single authorization checkpoint; handlers behind it trust
// the context identity and never re-verify tokens.
func AuthRequired(tokens TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageBody{Msg: "Token não fornecido"})
			return
		}

		tokenStr, found := strings.CutPrefix(auth, "Bearer ")
		if !found || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageBody{Msg: "Token mal formatado"})
			return
		}

		id, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageBody{Msg: "Token inválido ou expirado"})
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}

// IdentityFrom extracts the decoded identity set by AuthRequired.
func IdentityFrom(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil, false
	}
	id, ok := v.(*Identity)
	return id, ok
}
