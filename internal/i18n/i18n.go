// Package i18n renders verdict reasons and other user-facing text. Korean
// is the product language; English is kept for API consumers and tests.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	mu            sync.RWMutex
	bundle        *i18n.Bundle
	defaultLocale = "ko"
	matcher       = language.NewMatcher([]language.Tag{language.Korean, language.English})
)

type ctxKey struct{}

// Init loads the embedded catalogs. It is safe to call more than once.
func Init(defLocale string) error {
	b := i18n.NewBundle(language.Korean)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("i18n: read locales dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", e.Name(), err)
		}
		if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
			return fmt.Errorf("i18n: parse %s: %w", e.Name(), err)
		}
	}

	locale := DefaultLocale()
	if defLocale != "" {
		locale = Match(defLocale)
	}

	mu.Lock()
	bundle = b
	defaultLocale = locale
	mu.Unlock()

	zap.L().Named("i18n").Info("locales loaded",
		zap.Int("files", len(entries)),
		zap.String("default", defaultLocale),
	)
	return nil
}

// Match picks the closest supported locale for an Accept-Language value.
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale()
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale()
	}
	if idx == 1 {
		return "en"
	}
	return "ko"
}

func DefaultLocale() string {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLocale
}

func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

func LocaleFromContext(ctx context.Context) string {
	if ctx != nil {
		if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
			return v
		}
	}
	return DefaultLocale()
}

// T translates messageID for the locale carried by ctx. Unknown ids are
// returned unchanged so a missing catalog entry never blanks a message.
func T(ctx context.Context, messageID string, templateData ...map[string]any) string {
	mu.RLock()
	b := bundle
	mu.RUnlock()
	if b == nil {
		if err := Init(""); err != nil {
			return messageID
		}
		mu.RLock()
		b = bundle
		mu.RUnlock()
	}

	l := i18n.NewLocalizer(b, LocaleFromContext(ctx))
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(templateData) > 0 && templateData[0] != nil {
		cfg.TemplateData = templateData[0]
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}
