package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SortOption задаёт порядок выдачи каталога.
type SortOption string

const (
	SortNewest       SortOption = "newest"
	SortPriceLowHigh SortOption = "price-low-high"
	SortPriceHighLow SortOption = "price-high-low"
	SortPopularity   SortOption = "popularity"
)

// FilterQuery — параметры одного запроса к каталогу.
// Нулевое значение означает отсутствие ограничений и сортировку по новизне.
type FilterQuery struct {
	Category   string
	Sizes      []string
	Colors     []string
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Sort       SortOption
	SearchTerm string
}

// ApplyFilters прогоняет каталог через пайплайн фильтров и сортировку.
// Порядок шагов фиксирован: поиск, категория, размеры, цвета, цена и в конце
// сортировка. Каталог пересматривается целиком на каждый запрос; для больших
// каталогов это предел масштабирования, а не ошибка.
func ApplyFilters(catalog []Product, query FilterQuery) []Product {
	filtered := make([]Product, 0, len(catalog))

	for _, p := range catalog {
		if matchesQuery(&p, &query) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, query.Sort)

	return filtered
}

// FindLatest возвращает до limit новинок, отсортированных по дате создания
// (самые свежие первыми).
func FindLatest(catalog []Product, limit int) []Product {
	latest := make([]Product, 0, limit)
	for _, p := range catalog {
		if p.IsNew {
			latest = append(latest, p)
		}
	}

	sortProducts(latest, SortNewest)

	if limit >= 0 && len(latest) > limit {
		latest = latest[:limit]
	}

	return latest
}

func matchesQuery(p *Product, q *FilterQuery) bool {
	if q.SearchTerm != "" && !matchesSearch(p, q.SearchTerm) {
		return false
	}

	if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
		return false
	}

	if len(q.Sizes) > 0 && !intersects(p.Sizes, q.Sizes) {
		return false
	}

	if len(q.Colors) > 0 && !intersects(p.Colors, q.Colors) {
		return false
	}

	price := p.EffectiveUnitPrice()
	if q.PriceMin != nil && price.LessThan(*q.PriceMin) {
		return false
	}
	if q.PriceMax != nil && price.GreaterThan(*q.PriceMax) {
		return false
	}

	return true
}

// matchesSearch ищет подстроку без учёта регистра по имени, описанию,
// категории, подкатегории и тегам. Именно подстрока, не токены.
func matchesSearch(p *Product, term string) bool {
	searchable := strings.Join([]string{
		p.Name,
		p.Description,
		p.Category,
		p.Subcategory,
		strings.Join(p.Tags, " "),
	}, " ")

	return strings.Contains(strings.ToLower(searchable), strings.ToLower(term))
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}

	return false
}

// sortProducts выполняет стабильную сортировку на месте. Неизвестное
// значение сортировки трактуется как newest.
func sortProducts(products []Product, option SortOption) {
	switch option {
	case SortPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectiveUnitPrice().LessThan(products[j].EffectiveUnitPrice())
		})
	case SortPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectiveUnitPrice().GreaterThan(products[j].EffectiveUnitPrice())
		})
	case SortPopularity:
		// Флаг featured как замена реальной метрики популярности;
		// стабильная сортировка сохраняет исходный порядок среди равных.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
