// Package locale отвечает за локализованное представление дат и текстов писем.
// Поддерживаются en (по умолчанию), da и ar. Таблицы хранятся во встроенных YAML файлах.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

// ErrUnknownLocale возвращается для неподдерживаемой локали
var ErrUnknownLocale = errors.New("locale: unknown locale")

// Locale таблица локализации одного языка
type Locale struct {
	Tag           string            `yaml:"tag"`
	Direction     string            `yaml:"direction"`
	Weekdays      []string          `yaml:"weekdays"`
	WeekdaysShort []string          `yaml:"weekdays_short"`
	Months        []string          `yaml:"months"`
	DateFull      string            `yaml:"date_full"`
	Messages      map[string]string `yaml:"messages"`
}

// Registry набор загруженных локалей и матчер языков
type Registry struct {
	locales  map[string]*Locale
	tags     []language.Tag
	matcher  language.Matcher
	fallback string
}

// supported порядок важен: первая локаль используется, если ничего не подошло
var supported = []string{"en", "da", "ar"}

// Load загружает встроенные таблицы локалей.
// fallback задаёт локаль по умолчанию, пустое значение означает en.
func Load(fallback string) (*Registry, error) {
	if fallback == "" {
		fallback = supported[0]
	}

	r := &Registry{
		locales:  make(map[string]*Locale, len(supported)),
		fallback: fallback,
	}

	// Локаль по умолчанию должна идти первой для language.NewMatcher
	order := append([]string{fallback}, supported...)
	seen := make(map[string]bool, len(order))

	for _, tag := range order {
		if seen[tag] {
			continue
		}
		seen[tag] = true

		loc, err := loadFile(tag)
		if err != nil {
			return nil, err
		}
		r.locales[tag] = loc
		r.tags = append(r.tags, language.Make(tag))
	}

	r.matcher = language.NewMatcher(r.tags)
	return r, nil
}

func loadFile(tag string) (*Locale, error) {
	data, err := localeFiles.ReadFile("locales/" + tag + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, tag)
	}

	var loc Locale
	if err := yaml.Unmarshal(data, &loc); err != nil {
		return nil, fmt.Errorf("locale: failed to parse %s: %w", tag, err)
	}

	if len(loc.Weekdays) != 7 || len(loc.WeekdaysShort) != 7 || len(loc.Months) != 12 {
		return nil, fmt.Errorf("locale: incomplete table for %s", tag)
	}

	return &loc, nil
}

// Match выбирает локаль по списку предпочтений.
// Принимает как короткие теги (da), так и значения заголовка Accept-Language.
func (r *Registry) Match(preferences ...string) *Locale {
	var desired []language.Tag
	for _, p := range preferences {
		if strings.TrimSpace(p) == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}

	if len(desired) == 0 {
		return r.locales[r.fallback]
	}

	_, index, confidence := r.matcher.Match(desired...)
	if confidence == language.No {
		return r.locales[r.fallback]
	}

	base, _ := r.tags[index].Base()
	if loc, ok := r.locales[base.String()]; ok {
		return loc
	}
	return r.locales[r.fallback]
}

// Get возвращает локаль по точному тегу
func (r *Registry) Get(tag string) (*Locale, error) {
	loc, ok := r.locales[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, tag)
	}
	return loc, nil
}

// Supported возвращает список поддерживаемых тегов
func (r *Registry) Supported() []string {
	result := make([]string, 0, len(r.tags))
	for _, t := range r.tags {
		result = append(result, t.String())
	}
	return result
}

// WeekdayName полное название дня недели
func (l *Locale) WeekdayName(d time.Weekday) string {
	return l.Weekdays[int(d)]
}

// FormatDate полная дата для подтверждения записи, например "Monday, March 10, 2025"
func (l *Locale) FormatDate(date time.Time) string {
	return strings.NewReplacer(
		"{weekday}", l.Weekdays[int(date.Weekday())],
		"{month}", l.Months[int(date.Month())-1],
		"{day}", strconv.Itoa(date.Day()),
		"{year}", strconv.Itoa(date.Year()),
	).Replace(l.DateFull)
}

// FormatDayShort подпись для выбора даты: короткий день недели и число
func (l *Locale) FormatDayShort(date time.Time) (weekday string, day string) {
	return l.WeekdaysShort[int(date.Weekday())], strconv.Itoa(date.Day())
}

// Message возвращает текст по ключу с подстановкой {name}-параметров.
// Неизвестный ключ возвращается как есть.
func (l *Locale) Message(key string, params map[string]string) string {
	text, ok := l.Messages[key]
	if !ok {
		return key
	}
	if len(params) == 0 {
		return text
	}

	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// IsRTL сообщает, что текст пишется справа налево
func (l *Locale) IsRTL() bool {
	return l.Direction == "rtl"
}
