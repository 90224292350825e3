// Package labels is the default text provider for the date wheels: localised
// month and era names, and the row titles shown by a wheel shell.
package labels

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/wheel"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

//go:embed locales/*.json
var localeFS embed.FS

// Provider looks up wheel labels in the embedded locale files.
type Provider struct {
	// SupportedLanguages lists the languages found in the embedded locales.
	SupportedLanguages []string

	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
}

// NewProvider loads the embedded locales and selects lang. An unknown or
// malformed lang falls back to config.DefaultLanguage.
func NewProvider(lang string) *Provider {
	p := &Provider{bundle: i18n.NewBundle(language.English)}
	p.bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	p.loadLocales()
	p.SetLanguage(lang)
	return p
}

func (p *Provider) loadLocales() {
	entries, err := localeFS.ReadDir(config.LocaleDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompLabels,
			config.LogKeyError, err,
		)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocalePrefix) || !strings.HasSuffix(name, config.LocaleExt) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompLabels,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, config.LocalePrefix), config.LocaleExt)
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompLabels,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := p.bundle.LoadMessageFileFS(localeFS, config.LocaleDir+"/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompLabels,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		p.SupportedLanguages = append(p.SupportedLanguages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompLabels,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}
}

// SetLanguage switches the labels to lang, a BCP 47 tag such as "fr" or
// "fr-CA". Regional variants use the labels of their base language.
func (p *Provider) SetLanguage(lang string) {
	selected := config.DefaultLanguage

	tag, err := language.Parse(lang)
	base, _ := tag.Base()
	if err == nil && slices.Contains(p.SupportedLanguages, base.String()) {
		selected = base.String()
	} else {
		slog.Debug(config.MsgLangFallback,
			config.LogKeyComponent, config.CompLabels,
			config.LogKeyLang, lang,
			config.LogKeyNew, selected,
		)
	}

	p.lang = selected
	p.localizer = i18n.NewLocalizer(p.bundle, selected)
}

// Language returns the language the labels are currently taken from.
func (p *Provider) Language() string {
	return p.lang
}

// Month returns the name of month index (0 for January).
func (p *Provider) Month(index int, short bool) string {
	format := config.TKeyMonthFormat
	if short {
		format = config.TKeyMonthShortFormat
	}
	return p.msg(fmt.Sprintf(format, index+1))
}

// Era returns the name of an era wheel value (0 for BC, 1 for AD). Other
// indices have no key and come back as the era key format.
func (p *Provider) Era(index int) string {
	switch index {
	case 0:
		return p.msg(config.TKeyEraBC)
	case 1:
		return p.msg(config.TKeyEraAD)
	default:
		return p.msg(fmt.Sprintf(config.TKeyEraFormat, index))
	}
}

// RowLabel is the title of a wheel row showing value: 1-based days, plain
// centuries, two-digit sub-centuries, and localised months and eras.
func (p *Provider) RowLabel(c wheel.Component, value int, shortMonths bool) string {
	switch c {
	case wheel.Day:
		return fmt.Sprintf(config.FormatDay, value+1)
	case wheel.Month:
		return p.Month(value, shortMonths)
	case wheel.Century:
		return fmt.Sprintf(config.FormatCentury, value)
	case wheel.SubCentury:
		return fmt.Sprintf(config.FormatSubCentury, value)
	case wheel.Era:
		return p.Era(value)
	default:
		return ""
	}
}

// ColumnWidth is the width, in terminal cells, of the widest label of wheel c
// under the year bounds b.
func (p *Provider) ColumnWidth(c wheel.Component, b wheel.YearBounds, shortMonths bool) int {
	n := wheel.RealRowCount(c, b)
	if n == 0 {
		return 0
	}
	if c == wheel.Century {
		// Plain numbers: the largest century is the widest.
		return cellWidth(p.RowLabel(c, n-1, shortMonths))
	}

	widest := 0
	for v := 0; v < n; v++ {
		widest = max(widest, cellWidth(p.RowLabel(c, v, shortMonths)))
	}
	return widest
}

// UseShortMonths reports whether the wheels for bounds b only fit into
// available cells with abbreviated month names. Each column is padded by
// config.ColumnPadding.
func (p *Provider) UseShortMonths(available int, b wheel.YearBounds) bool {
	total := 0
	for _, c := range wheel.All {
		total += p.ColumnWidth(c, b, false) + config.ColumnPadding
	}
	return total > available
}

// msg is a helper to translate a key safely.
func (p *Provider) msg(key string) string {
	if p.localizer == nil {
		return key
	}
	text, err := p.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompLabels,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return text
}

// cellWidth counts East Asian wide and fullwidth runes as two cells.
func cellWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
