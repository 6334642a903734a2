package preference

import (
	"context"
	"fmt"

	"github.com/riskibarqy/pl-dashboard/internal/platform/locale"
)

// Key names a stored preference. The values are fixed storage keys shared
// with the frontend.
type Key string

const (
	KeyTimezone     Key = "pl-timezone"
	KeyLanguage     Key = "pl-language"
	KeyHomeTimezone Key = "pl-home-timezone"
)

func Keys() []Key {
	return []Key{KeyTimezone, KeyLanguage, KeyHomeTimezone}
}

func (k Key) Valid() bool {
	switch k {
	case KeyTimezone, KeyLanguage, KeyHomeTimezone:
		return true
	default:
		return false
	}
}

// Values is the raw key/value view of one client's stored preferences.
type Values map[Key]string

// Preferences is the resolved view with defaults applied.
type Preferences struct {
	Timezone     string
	HomeTimezone string
	Language     locale.Language
}

func Defaults() Preferences {
	return Preferences{
		Timezone:     locale.DefaultZone,
		HomeTimezone: locale.DefaultZone,
		Language:     locale.DefaultLanguage,
	}
}

// Resolve applies stored values over the defaults. Stored values that no
// longer validate are ignored.
func Resolve(values Values) Preferences {
	out := Defaults()
	if tz, ok := values[KeyTimezone]; ok && ValidateTimezone(tz) == nil {
		out.Timezone = tz
	}
	if tz, ok := values[KeyHomeTimezone]; ok && ValidateTimezone(tz) == nil {
		out.HomeTimezone = tz
	}
	if raw, ok := values[KeyLanguage]; ok {
		if lang, ok := locale.ParseLanguage(raw); ok {
			out.Language = lang
		}
	}
	return out
}

func ValidateTimezone(id string) error {
	if id == "" {
		return fmt.Errorf("timezone is required")
	}
	_, err := locale.LoadZone(id)
	return err
}

// Validate checks one key/value pair before it is stored.
func Validate(key Key, value string) error {
	switch key {
	case KeyTimezone, KeyHomeTimezone:
		return ValidateTimezone(value)
	case KeyLanguage:
		lang, ok := locale.ParseLanguage(value)
		if !ok || string(lang) != value {
			return fmt.Errorf("unsupported language %q", value)
		}
		return nil
	default:
		return fmt.Errorf("unknown preference key %q", key)
	}
}

// Repository persists preferences per client id.
type Repository interface {
	Get(ctx context.Context, clientID string) (Values, error)
	Put(ctx context.Context, clientID string, values Values) error
}
