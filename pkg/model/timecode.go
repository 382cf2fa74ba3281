package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidTimeCode est l'erreur "sentinelle" pour tout time code mal formé
// ou hors bornes. À tester avec errors.Is.
var ErrInvalidTimeCode = errors.New("invalid time code")

// TimeCodeError détaille un time code refusé : le texte brut et la raison.
type TimeCodeError struct {
	Raw    string
	Reason string
}

func (e *TimeCodeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid time code %q", e.Raw)
	}
	return fmt.Sprintf("invalid time code %q: %s", e.Raw, e.Reason)
}

// Unwrap permet errors.Is(err, ErrInvalidTimeCode).
func (e *TimeCodeError) Unwrap() error { return ErrInvalidTimeCode }

// timeCodeRe : "H…:MM:SS" (groupes 1-3) ou "M…:SS" (groupes 4-5).
// Le groupe le plus à gauche accepte un nombre quelconque de chiffres,
// les suivants exactement deux.
var timeCodeRe = regexp.MustCompile(`^(?:(\d+):(\d{2}):(\d{2})|(\d+):(\d{2}))$`)

// TimeCode représente un instant écoulé (heures, minutes, secondes).
// Les heures n'ont pas de borne haute, minutes et secondes sont dans [0,59].
// Valeur immuable : on la construit via NewTimeCode ou ParseTimeCode.
type TimeCode struct {
	hours   int
	minutes int
	seconds int
}

// NewTimeCode construit un TimeCode en vérifiant les bornes.
func NewTimeCode(hours, minutes, seconds int) (TimeCode, error) {
	raw := fmt.Sprintf("%d:%d:%d", hours, minutes, seconds)
	if hours < 0 {
		return TimeCode{}, &TimeCodeError{Raw: raw, Reason: "hours must not be negative"}
	}
	if minutes < 0 || minutes > 59 {
		return TimeCode{}, &TimeCodeError{Raw: raw, Reason: "minutes must be between 0-59"}
	}
	if seconds < 0 || seconds > 59 {
		return TimeCode{}, &TimeCodeError{Raw: raw, Reason: "seconds must be between 0-59"}
	}
	return TimeCode{hours: hours, minutes: minutes, seconds: seconds}, nil
}

// MustTimeCode est l'équivalent de NewTimeCode qui panique.
// Réservé aux constantes et aux tests.
func MustTimeCode(hours, minutes, seconds int) TimeCode {
	tc, err := NewTimeCode(hours, minutes, seconds)
	if err != nil {
		panic(err)
	}
	return tc
}

// ParseTimeCode analyse "H…:MM:SS" ou "M…:SS".
// Les zéros en tête du premier groupe sont ignorés ("001:22:33" -> 1h22m33s).
func ParseTimeCode(text string) (TimeCode, error) {
	m := timeCodeRe.FindStringSubmatch(text)
	if m == nil {
		return TimeCode{}, &TimeCodeError{Raw: text, Reason: "expected H:MM:SS or M:SS"}
	}

	var hStr, mStr, sStr string
	if m[1] != "" {
		hStr, mStr, sStr = m[1], m[2], m[3]
	} else {
		hStr, mStr, sStr = "0", m[4], m[5]
	}

	hours, err := strconv.Atoi(hStr)
	if err != nil {
		// uniquement possible en cas de débordement (le regex garantit des chiffres)
		return TimeCode{}, &TimeCodeError{Raw: text, Reason: "hours out of range"}
	}
	minutes, err := strconv.Atoi(mStr)
	if err != nil {
		return TimeCode{}, &TimeCodeError{Raw: text, Reason: "minutes out of range"}
	}
	seconds, _ := strconv.Atoi(sStr) // toujours deux chiffres

	if minutes > 59 {
		return TimeCode{}, &TimeCodeError{Raw: text, Reason: "minutes must be between 0-59"}
	}
	if seconds > 59 {
		return TimeCode{}, &TimeCodeError{Raw: text, Reason: "seconds must be between 0-59"}
	}
	return TimeCode{hours: hours, minutes: minutes, seconds: seconds}, nil
}

// TimeCodeFromDuration convertit une durée (tronquée à la seconde).
// Les durées négatives donnent 00:00:00.
func TimeCodeFromDuration(d time.Duration) TimeCode {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return TimeCode{
		hours:   int(total / 3600),
		minutes: int((total % 3600) / 60),
		seconds: int(total % 60),
	}
}

func (t TimeCode) Hours() int   { return t.hours }
func (t TimeCode) Minutes() int { return t.minutes }
func (t TimeCode) Seconds() int { return t.seconds }

// TotalSeconds retourne le nombre total de secondes (utile pour les liens ?t=).
func (t TimeCode) TotalSeconds() int64 {
	return int64(t.hours)*3600 + int64(t.minutes)*60 + int64(t.seconds)
}

// Duration convertit le TimeCode en time.Duration.
func (t TimeCode) Duration() time.Duration {
	return time.Duration(t.TotalSeconds()) * time.Second
}

// Compare retourne -1, 0 ou +1 (ordre lexicographique heures, minutes, secondes).
func (t TimeCode) Compare(other TimeCode) int {
	switch {
	case t.hours != other.hours:
		return cmpInt(t.hours, other.hours)
	case t.minutes != other.minutes:
		return cmpInt(t.minutes, other.minutes)
	default:
		return cmpInt(t.seconds, other.seconds)
	}
}

// Equal : mêmes heures, minutes et secondes.
func (t TimeCode) Equal(other TimeCode) bool { return t == other }

// Before indique si t est strictement avant other.
func (t TimeCode) Before(other TimeCode) bool { return t.Compare(other) < 0 }

// CompareTimeCodes est la forme fonctionnelle de Compare (pratique pour slices.SortStableFunc).
func CompareTimeCodes(a, b TimeCode) int { return a.Compare(b) }

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// String est LA représentation canonique, utilisée partout où un TimeCode est affiché :
// heures toujours présentes, chaque composant sur au moins deux chiffres.
// Exemple : 1h02m03s -> "01:02:03", 123h -> "123:00:00".
func (t TimeCode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hours, t.minutes, t.seconds)
}

// MarshalText permet d'utiliser un TimeCode dans du YAML / JSON.
func (t TimeCode) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText applique la même grammaire que ParseTimeCode.
func (t *TimeCode) UnmarshalText(b []byte) error {
	tc, err := ParseTimeCode(string(b))
	if err != nil {
		return err
	}
	*t = tc
	return nil
}
