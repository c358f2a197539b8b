package repository

import (
	"github.com/Masterminds/squirrel"
)

const tagsColumn = "tags"

// tagsContainAny casa linhas cuja coluna de tags (texto separado por vírgula) contém
// qualquer uma das tags informadas como substring. Uma tag que é substring de outra
// ("Sal" em "Sale") também casa.
func tagsContainAny(tags []string) squirrel.Sqlizer {
	matches := make(squirrel.Or, 0, len(tags))
	for _, tag := range tags {
		matches = append(matches, squirrel.Like{tagsColumn: likePattern(tag)})
	}
	return matches
}
