package cookie

import (
	"net/http"
	"time"

	"referral-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// Carrier reads and writes the signed attribution token on the visitor's
// browser as an HttpOnly cookie.
type Carrier struct {
	c   *gin.Context
	cfg config.AttributionConfig
}

func NewCarrier(c *gin.Context, cfg config.AttributionConfig) *Carrier {
	return &Carrier{c: c, cfg: cfg}
}

func (k *Carrier) Read() (string, bool) {
	value, err := k.c.Cookie(k.cfg.CookieName)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

func (k *Carrier) Write(value string, maxAge time.Duration) {
	k.c.SetSameSite(getSameSite(k.cfg.CookieSameSite))
	k.c.SetCookie(
		k.cfg.CookieName,
		value,
		int(maxAge.Seconds()),
		"/",
		k.cfg.CookieDomain,
		k.cfg.CookieSecure,
		true, // HttpOnly
	)
}

func (k *Carrier) Clear() {
	k.c.SetSameSite(getSameSite(k.cfg.CookieSameSite))
	k.c.SetCookie(
		k.cfg.CookieName,
		"",
		-1,
		"/",
		k.cfg.CookieDomain,
		k.cfg.CookieSecure,
		true,
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
