package templates

import (
	"context"
	"strings"
	"time"

	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/config"
)

// Option pattern
type Option func(*EmailData)

func WithIP(ip string) Option        { return func(d *EmailData) { d.IP = ip } }
func WithUserAgent(ua string) Option { return func(d *EmailData) { d.UserAgent = ua } }
func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func setLocation(d *EmailData, loc string) {
	if s := strings.TrimSpace(loc); s != "" {
		d.Location = s
	}
}

func WithLocation(loc string) Option {
	return func(d *EmailData) { setLocation(d, loc) }
}

func WithGeo(g Geo) Option {
	return func(d *EmailData) { setLocation(d, FormatGeo(g)) }
}

func WithGeoFromIP(ctx context.Context, r GeoResolver, ip string) Option {
	return func(d *EmailData) {
		if r == nil || strings.TrimSpace(ip) == "" {
			return
		}
		if g, err := r.Lookup(ctx, ip); err == nil {
			setLocation(d, FormatGeo(g))
		}
	}
}

// NewBaseEmailData fills the shared fields from config, then applies Options
func NewBaseEmailData(cfg *config.Config, typ, username, email, recipient string, opts ...Option) EmailData {
	d := EmailData{
		Username:       username,
		Email:          email,
		RecipientEmail: recipient,
		Type:           typ,

		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		AppName:        cfg.AppName,

		LogoURL:    cfg.LogoURL,
		SupportURL: cfg.SupportURL,
		PrivacyURL: cfg.PrivacyURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewWelcomeData builds the data map for the welcome email sent after a
// successful registration.
func NewWelcomeData(cfg *config.Config, username, email string, opts ...Option) map[string]any {
	d := NewBaseEmailData(cfg, Welcome, username, email, email, opts...)
	return ToMap(d)
}
