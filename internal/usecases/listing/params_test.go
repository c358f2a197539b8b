package listing

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func mustParseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("query inválida %q: %v", raw, err)
	}
	return values
}

func TestNormalizeParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.FilterCriteria
	}{
		{
			name:  "sem parâmetros usa os padrões",
			query: "",
			want:  domain.FilterCriteria{Page: 1, PageSize: 10},
		},
		{
			name:  "busca é aparada e busca em branco é ignorada",
			query: "q=%20%20Neha%20",
			want:  domain.FilterCriteria{SearchText: strPtr("Neha"), Page: 1, PageSize: 10},
		},
		{
			name:  "busca só com espaços não filtra",
			query: "q=%20%20",
			want:  domain.FilterCriteria{Page: 1, PageSize: 10},
		},
		{
			name:  "lista separada por vírgula",
			query: "regions=North,%20South,,",
			want:  domain.FilterCriteria{Regions: []string{"North", "South"}, Page: 1, PageSize: 10},
		},
		{
			name:  "lista repetida e com colchetes",
			query: "genders=Male&genders=Female&categories[]=Beauty&categories[]=Clothing,Electronics",
			want: domain.FilterCriteria{
				Genders:    []string{"Male", "Female"},
				Categories: []string{"Beauty", "Clothing", "Electronics"},
				Page:       1,
				PageSize:   10,
			},
		},
		{
			name:  "lista só com brancos vira ausência de filtro",
			query: "tags=%20,%20&paymentMethods=",
			want:  domain.FilterCriteria{Page: 1, PageSize: 10},
		},
		{
			name:  "paginação inválida volta ao padrão",
			query: "page=abc&limit=-5",
			want:  domain.FilterCriteria{Page: 1, PageSize: 10},
		},
		{
			name:  "paginação zero volta ao padrão",
			query: "page=0&limit=0",
			want:  domain.FilterCriteria{Page: 1, PageSize: 10},
		},
		{
			name:  "paginação gigante é limitada",
			query: "page=4611686018427387905&limit=9223372036854775807",
			want:  domain.FilterCriteria{Page: math.MaxInt32, PageSize: math.MaxInt32},
		},
		{
			name:  "paginação decimal é truncada",
			query: "page=2.7&limit=25",
			want:  domain.FilterCriteria{Page: 2, PageSize: 25},
		},
		{
			name:  "idades invertidas são trocadas",
			query: "ageMin=50&ageMax=20",
			want:  domain.FilterCriteria{AgeMin: intPtr(20), AgeMax: intPtr(50), Page: 1, PageSize: 10},
		},
		{
			name:  "apenas um limite de idade válido",
			query: "ageMin=abc&ageMax=30",
			want:  domain.FilterCriteria{AgeMax: intPtr(30), Page: 1, PageSize: 10},
		},
		{
			name:  "data máxima somente-data é estendida até o fim do dia",
			query: "dateMin=2024-01-01&dateMax=2024-01-01",
			want: domain.FilterCriteria{
				DateMin:  strPtr("2024-01-01"),
				DateMax:  strPtr("2024-01-01T23:59:59.999Z"),
				Page:     1,
				PageSize: 10,
			},
		},
		{
			name:  "datas invertidas são trocadas antes da extensão",
			query: "dateMin=2024-03-10&dateMax=2024-01-05",
			want: domain.FilterCriteria{
				DateMin:  strPtr("2024-01-05"),
				DateMax:  strPtr("2024-03-10T23:59:59.999Z"),
				Page:     1,
				PageSize: 10,
			},
		},
		{
			name:  "data máxima com horário é mantida",
			query: "dateMax=2024-01-01T10:00:00.000Z",
			want: domain.FilterCriteria{
				DateMax:  strPtr("2024-01-01T10:00:00.000Z"),
				Page:     1,
				PageSize: 10,
			},
		},
		{
			name:  "ordenação válida decrescente",
			query: "sort=amount:desc",
			want: domain.FilterCriteria{
				Sort:     &domain.SortOption{Key: domain.SortByAmount, Direction: domain.SortDesc},
				Page:     1,
				PageSize: 10,
			},
		},
		{
			name:  "direção diferente de desc vira asc",
			query: "sort=customerName:DESC",
			want: domain.FilterCriteria{
				Sort:     &domain.SortOption{Key: domain.SortByCustomerName, Direction: domain.SortAsc},
				Page:     1,
				PageSize: 10,
			},
		},
		{
			name:  "ordenação sem direção vira asc",
			query: "sort=age",
			want: domain.FilterCriteria{
				Sort:     &domain.SortOption{Key: domain.SortByAge, Direction: domain.SortAsc},
				Page:     1,
				PageSize: 10,
			},
		},
		{
			name:  "chave de ordenação desconhecida usa a ordenação padrão",
			query: "sort=nonexistentColumn:asc",
			want:  domain.FilterCriteria{Page: 1, PageSize: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeParams(mustParseQuery(t, tt.query)))
		})
	}
}

func TestNormalizeParams_NeverNonPositive(t *testing.T) {
	inputs := []string{"", "0", "-1", "NaN", "Infinity", "1e99", "0.5", "   ", "7abc"}

	for _, in := range inputs {
		criteria := NormalizeParams(url.Values{ParamPage: {in}, ParamLimit: {in}})
		assert.GreaterOrEqual(t, criteria.Page, 1, "page para %q", in)
		assert.GreaterOrEqual(t, criteria.PageSize, 1, "limit para %q", in)
	}
}
