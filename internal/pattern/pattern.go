package pattern

import (
	"fmt"
	"strings"
)

// Pattern описывает шаблон идентификатора блока вида "namespace:path".
// Каждый сегмент может быть символом "*", который совпадает с любым значением.
// Примеры: "core:sand", "core:*", "*:anvil", "*".
type Pattern struct {
	Namespace string // Пространство имен или "*"
	Path      string // Имя блока внутри пространства или "*"
}

// Wildcard сегмент, совпадающий с любым значением
const Wildcard = "*"

// Parse разбирает строку шаблона. Возвращает ошибку для пустых
// и синтаксически некорректных шаблонов — молчаливых умолчаний нет.
func Parse(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Pattern{}, fmt.Errorf("пустой шаблон идентификатора")
	}

	// Одиночная "*" совпадает с любым блоком
	if s == Wildcard {
		return Pattern{Namespace: Wildcard, Path: Wildcard}, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Pattern{}, fmt.Errorf("шаблон %q: ожидается формат namespace:path", s)
	}

	ns, path := parts[0], parts[1]
	if ns == "" || path == "" {
		return Pattern{}, fmt.Errorf("шаблон %q: пустой сегмент", s)
	}
	if err := validateSegment(ns); err != nil {
		return Pattern{}, fmt.Errorf("шаблон %q: %w", s, err)
	}
	if err := validateSegment(path); err != nil {
		return Pattern{}, fmt.Errorf("шаблон %q: %w", s, err)
	}

	return Pattern{Namespace: ns, Path: path}, nil
}

// ParseList разбирает список шаблонов, прерываясь на первой ошибке
func ParseList(items []string) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(items))
	for _, item := range items {
		p, err := Parse(item)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// validateSegment проверяет, что сегмент либо "*", либо допустимое имя
func validateSegment(seg string) error {
	if seg == Wildcard {
		return nil
	}
	for _, r := range seg {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '.' {
			continue
		}
		return fmt.Errorf("недопустимый символ %q в сегменте %q", r, seg)
	}
	return nil
}

// Match проверяет, совпадает ли идентификатор блока "namespace:path" с шаблоном
func (p Pattern) Match(id string) bool {
	ns, path, ok := splitID(id)
	if !ok {
		return false
	}
	if p.Namespace != Wildcard && p.Namespace != ns {
		return false
	}
	if p.Path != Wildcard && p.Path != path {
		return false
	}
	return true
}

// MatchAny возвращает true, если идентификатор совпадает хотя бы с одним шаблоном
func MatchAny(patterns []Pattern, id string) bool {
	for _, p := range patterns {
		if p.Match(id) {
			return true
		}
	}
	return false
}

// String возвращает каноническое строковое представление шаблона
func (p Pattern) String() string {
	return p.Namespace + ":" + p.Path
}

// splitID разбирает полный идентификатор блока без поддержки wildcards
func splitID(id string) (ns, path string, ok bool) {
	idx := strings.IndexByte(id, ':')
	if idx <= 0 || idx == len(id)-1 {
		return "", "", false
	}
	return id[:idx], id[idx+1:], true
}

// ValidateReference проверяет, что строка — полный идентификатор ресурса
// (namespace:path без wildcard). Используется для ссылок на звуки и блоки.
func ValidateReference(s string) error {
	ns, path, ok := splitID(s)
	if !ok {
		return fmt.Errorf("ссылка %q: ожидается формат namespace:path", s)
	}
	if ns == Wildcard || path == Wildcard {
		return fmt.Errorf("ссылка %q: wildcard недопустим в ссылке на ресурс", s)
	}
	if err := validateSegment(ns); err != nil {
		return fmt.Errorf("ссылка %q: %w", s, err)
	}
	if err := validateSegment(path); err != nil {
		return fmt.Errorf("ссылка %q: %w", s, err)
	}
	return nil
}
