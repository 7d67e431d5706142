package storage

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

// Kind identifica o bucket de imagens
type Kind string

const (
	KindHero     Kind = "hero"
	KindAbout    Kind = "about"
	KindServices Kind = "services"
	KindBarbers  Kind = "barbers"
)

func ParseKind(s string) (Kind, bool) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindHero, KindAbout, KindServices, KindBarbers:
		return k, true
	}
	return "", false
}

var (
	wellKnown   = regexp.MustCompile(`^(hero|about|barber[0-9]+)\.(jpg|jpeg|png|webp)$`)
	generated   = regexp.MustCompile(`^[0-9]{13}-.+$`)
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
)

// IsWellKnown: nomes fixos usados pelo site (about.jpg, barber1.jpg)
func IsWellKnown(key string) bool {
	return wellKnown.MatchString(strings.ToLower(key))
}

func IsGenerated(key string) bool {
	return generated.MatchString(key)
}

// GeneratedKey monta <unix-millis>-<arquivo> com o nome higienizado
func GeneratedKey(now time.Time, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		name = "image"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), name)
}

// WithExt troca a extensão da chave
func WithExt(key, ext string) string {
	return strings.TrimSuffix(key, path.Ext(key)) + ext
}

// BarberKey é o nome fixo da foto do barbeiro
func BarberKey(barberID uint) string {
	return fmt.Sprintf("barber%d.jpg", barberID)
}

// CacheBusted acrescenta ?t=<unix-millis> para furar o cache do navegador
func CacheBusted(rawURL string, now time.Time) string {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%st=%d", rawURL, sep, now.UnixMilli())
}
