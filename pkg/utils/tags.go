package utils

import (
	"sort"
	"strings"
)

// TagSeparator é o delimitador usado para armazenar tags numa única coluna de texto
const TagSeparator = ","

// SplitTags separa uma string de tags ("New,Sale") em tags individuais,
// removendo espaços e entradas vazias
func SplitTags(raw string) []string {
	parts := strings.Split(raw, TagSeparator)
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// JoinTags monta a string armazenada a partir de tags individuais
func JoinTags(tags []string) string {
	return strings.Join(SplitTags(strings.Join(tags, TagSeparator)), TagSeparator)
}

// UniqueTags agrega várias strings de tags e retorna o conjunto distinto, ordenado
func UniqueTags(raws []string) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, raw := range raws {
		for _, tag := range SplitTags(raw) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// UniqueValues remove duplicados e valores em branco, retornando a lista ordenada
func UniqueValues(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
