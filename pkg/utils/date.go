package utils

import (
	"fmt"
	"strings"
	"time"
)

// ISOTimestampLayout é o formato em que as datas das vendas são armazenadas (ordenável como texto)
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

// EndOfDaySuffix estende uma data YYYY-MM-DD até o último instante do dia
const EndOfDaySuffix = "T23:59:59.999Z"

var importDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
	"02-01-2006",
	"01/02/2006",
	"2006/01/02",
}

// NormalizeDate converte uma data em texto livre para o formato ISO armazenado (UTC)
func NormalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return FormatTimestamp(t), nil
		}
	}
	return "", fmt.Errorf("formato de data não reconhecido: %q", value)
}

// FormatTimestamp formata um instante no formato armazenado
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}

// WidenToEndOfDay estende um limite superior somente-data até o fim do dia.
// Qualquer valor fora do formato YYYY-MM-DD é mantido como veio.
func WidenToEndOfDay(value string) string {
	if len(value) != len(time.DateOnly) {
		return value
	}
	if _, err := time.Parse(time.DateOnly, value); err != nil {
		return value
	}
	return value + EndOfDaySuffix
}
