package middleware

import (
	"errors"
	"log"
	"net/http"

	"whateating/internal/selection"
	"whateating/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "wwe_session"

	ctxSessionID = "sessionID"
	ctxState     = "sessionState"
	ctxStore     = "sessionStore"
)

// Session loads the caller's selection state, starting a new session with
// default state when the cookie is missing, invalid or expired.
func Session(store session.Store, signer *session.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			id    string
			state *selection.State
		)

		if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
			if sid, err := signer.Validate(cookie); err == nil {
				st, err := store.Get(ctx, sid)
				switch {
				case err == nil:
					id, state = sid, st
				case !errors.Is(err, session.ErrNotFound):
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
					return
				}
			}
		}

		if state == nil {
			sid, token, err := signer.NewSession()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
				return
			}

			state = selection.NewState()
			if err := store.Save(ctx, sid, state); err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
				return
			}

			id = sid
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, token, int(signer.TTL().Seconds()), "/", "", false, true)
			log.Printf("[SESSION] started %s", id)
		}

		c.Set(ctxSessionID, id)
		c.Set(ctxState, state)
		c.Set(ctxStore, store)
		c.Next()
	}
}

// State returns the session state attached by Session.
func State(c *gin.Context) *selection.State {
	v, ok := c.Get(ctxState)
	if !ok {
		return nil
	}
	st, _ := v.(*selection.State)
	return st
}

func SessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

// SaveState writes the (mutated) session state back to the store.
func SaveState(c *gin.Context) error {
	v, ok := c.Get(ctxStore)
	if !ok {
		return errors.New("no session store on context")
	}
	store := v.(session.Store)

	st := State(c)
	if st == nil {
		return errors.New("no session state on context")
	}

	return store.Save(c.Request.Context(), SessionID(c), st)
}
