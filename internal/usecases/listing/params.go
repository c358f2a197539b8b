package listing

import (
	"math"
	"net/url"
	"strings"

	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

// Nomes dos parâmetros aceitos na query string da listagem
const (
	ParamSearch         = "q"
	ParamRegions        = "regions"
	ParamGenders        = "genders"
	ParamCategories     = "categories"
	ParamPaymentMethods = "paymentMethods"
	ParamTags           = "tags"
	ParamAgeMin         = "ageMin"
	ParamAgeMax         = "ageMax"
	ParamDateMin        = "dateMin"
	ParamDateMax        = "dateMax"
	ParamSort           = "sort"
	ParamPage           = "page"
	ParamLimit          = "limit"
)

// NormalizeParams converte os parâmetros brutos da requisição em critérios de filtro.
// Nunca falha: entradas malformadas viram valores padrão ou ausência de filtro.
func NormalizeParams(values url.Values) domain.FilterCriteria {
	criteria := domain.FilterCriteria{
		SearchText:     optionalString(values.Get(ParamSearch)),
		Regions:        parseList(values, ParamRegions),
		Genders:        parseList(values, ParamGenders),
		Categories:     parseList(values, ParamCategories),
		PaymentMethods: parseList(values, ParamPaymentMethods),
		Tags:           parseList(values, ParamTags),
		Sort:           parseSort(values.Get(ParamSort)),
		Page:           positiveOrDefault(values.Get(ParamPage), domain.DefaultPage),
		PageSize:       positiveOrDefault(values.Get(ParamLimit), domain.DefaultPageSize),
	}

	criteria.AgeMin, criteria.AgeMax = ageBounds(values.Get(ParamAgeMin), values.Get(ParamAgeMax))
	criteria.DateMin, criteria.DateMax = dateBounds(values.Get(ParamDateMin), values.Get(ParamDateMax))

	return criteria
}

// parseList aceita "a,b" e a forma repetida (name=a&name=b ou name[]=a&name[]=b)
func parseList(values url.Values, name string) []string {
	var list []string
	for _, value := range append(append([]string{}, values[name]...), values[name+"[]"]...) {
		for _, item := range strings.Split(value, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			list = append(list, item)
		}
	}

	return list
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// maxPagingValue limita page e limit para que o offset não estoure
const maxPagingValue = math.MaxInt32

func positiveOrDefault(value string, fallback int) int {
	n, ok := utils.ParseLooseInt(value)
	if !ok || n < 1 {
		return fallback
	}
	return min(n, maxPagingValue)
}

func ageBounds(rawMin, rawMax string) (*int, *int) {
	var ageMin, ageMax *int

	if n, ok := utils.ParseLooseInt(rawMin); ok {
		ageMin = &n
	}
	if n, ok := utils.ParseLooseInt(rawMax); ok {
		ageMax = &n
	}

	if ageMin != nil && ageMax != nil && *ageMin > *ageMax {
		ageMin, ageMax = ageMax, ageMin
	}

	return ageMin, ageMax
}

// dateBounds troca os limites por comparação de texto (datas ISO são ordenáveis)
// e depois estende o limite superior até o fim do dia
func dateBounds(rawMin, rawMax string) (*string, *string) {
	dateMin := optionalString(rawMin)
	dateMax := optionalString(rawMax)

	if dateMin != nil && dateMax != nil && *dateMin > *dateMax {
		dateMin, dateMax = dateMax, dateMin
	}

	if dateMax != nil {
		widened := utils.WidenToEndOfDay(*dateMax)
		dateMax = &widened
	}

	return dateMin, dateMax
}

// parseSort interpreta "chave:direção". Chave fora da whitelist retorna nil (ordenação padrão).
func parseSort(value string) *domain.SortOption {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	key, direction, _ := strings.Cut(value, ":")

	option := domain.SortOption{
		Key:       domain.SortKey(strings.TrimSpace(key)),
		Direction: domain.SortAsc,
	}
	if !option.Key.IsValid() {
		return nil
	}

	if strings.TrimSpace(direction) == string(domain.SortDesc) {
		option.Direction = domain.SortDesc
	}

	return &option
}
