package catalog

import (
	"strings"

	"github.com/m-zayed5722/food-sense/internal/models"
)

// GeneralRestaurant is the bucket for items that match no brand keyword.
const GeneralRestaurant = "General"

// Index holds the derived lookup structures for a loaded catalog. It is
// built eagerly at construction and read-only afterwards, so one Index can
// be shared by any number of concurrent parse calls without locking. If the
// backing catalog changes, build a fresh Index; a stale one is never patched
// in place.
type Index struct {
	items       []models.MenuItemTemplate
	restaurants []RestaurantKeywords

	nameToItem        map[string]*models.MenuItemTemplate
	keywordToItem     map[string]*models.MenuItemTemplate
	restaurantToItems map[string][]*models.MenuItemTemplate

	// keywords preserves catalog insertion order so that keyword collisions
	// and scans resolve deterministically rather than by map iteration.
	keywords []string
}

// NewIndex validates the catalog and builds all lookups. The restaurant
// table is injected so the classifier and the detector share one source.
func NewIndex(items []models.MenuItemTemplate, restaurants []RestaurantKeywords) (*Index, error) {
	if err := models.ValidateCatalog(items); err != nil {
		return nil, err
	}

	idx := &Index{
		items:             items,
		restaurants:       restaurants,
		nameToItem:        make(map[string]*models.MenuItemTemplate, len(items)),
		keywordToItem:     make(map[string]*models.MenuItemTemplate),
		restaurantToItems: make(map[string][]*models.MenuItemTemplate),
	}

	for i := range items {
		item := &items[i]
		idx.nameToItem[strings.ToLower(item.Name)] = item

		for _, keyword := range item.Keywords {
			key := strings.ToLower(keyword)
			if _, taken := idx.keywordToItem[key]; taken {
				// First registration wins on collisions.
				continue
			}
			idx.keywordToItem[key] = item
			idx.keywords = append(idx.keywords, key)
		}

		restaurant := idx.classifyItem(item)
		idx.restaurantToItems[restaurant] = append(idx.restaurantToItems[restaurant], item)
	}

	return idx, nil
}

// classifyItem assigns an item to the first restaurant whose keyword appears
// in the item's name. Unlike detection there is no word-boundary weighting;
// a plain substring hit decides.
func (idx *Index) classifyItem(item *models.MenuItemTemplate) string {
	name := strings.ToLower(item.Name)
	for _, r := range idx.restaurants {
		for _, keyword := range r.Keywords {
			if strings.Contains(name, keyword) {
				return r.Name
			}
		}
	}
	return GeneralRestaurant
}

// Items returns all catalog items.
func (idx *Index) Items() []models.MenuItemTemplate {
	return idx.items
}

// Restaurants returns the injected restaurant keyword table.
func (idx *Index) Restaurants() []RestaurantKeywords {
	return idx.restaurants
}

// ItemByName looks an item up by exact name, case-insensitively.
func (idx *Index) ItemByName(name string) (*models.MenuItemTemplate, bool) {
	item, ok := idx.nameToItem[strings.ToLower(name)]
	return item, ok
}

// ItemByKeyword looks an item up by one of its alias keywords.
func (idx *Index) ItemByKeyword(keyword string) (*models.MenuItemTemplate, bool) {
	item, ok := idx.keywordToItem[strings.ToLower(keyword)]
	return item, ok
}

// RestaurantItems returns the items classified under a restaurant, or nil
// when the restaurant has none.
func (idx *Index) RestaurantItems(restaurant string) []*models.MenuItemTemplate {
	return idx.restaurantToItems[restaurant]
}

// ItemRefs returns pointers to every catalog item in insertion order.
func (idx *Index) ItemRefs() []*models.MenuItemTemplate {
	refs := make([]*models.MenuItemTemplate, len(idx.items))
	for i := range idx.items {
		refs[i] = &idx.items[i]
	}
	return refs
}

// ScopedItems returns the items visible when matching is scoped to one
// restaurant: the brand's own items followed by the General pool. Generic
// drinks and sides classify as General, and scoping a brand must not make
// the fries or the soda in the same sentence unmatchable.
func (idx *Index) ScopedItems(restaurant string) []*models.MenuItemTemplate {
	branded := idx.restaurantToItems[restaurant]
	general := idx.restaurantToItems[GeneralRestaurant]
	scoped := make([]*models.MenuItemTemplate, 0, len(branded)+len(general))
	scoped = append(scoped, branded...)
	if restaurant != GeneralRestaurant {
		scoped = append(scoped, general...)
	}
	return scoped
}

// RestaurantNames returns every restaurant that has at least one item,
// in table registration order, with General last.
func (idx *Index) RestaurantNames() []string {
	names := make([]string, 0, len(idx.restaurantToItems))
	for _, r := range idx.restaurants {
		if len(idx.restaurantToItems[r.Name]) > 0 {
			names = append(names, r.Name)
		}
	}
	if len(idx.restaurantToItems[GeneralRestaurant]) > 0 {
		names = append(names, GeneralRestaurant)
	}
	return names
}

// Keywords returns every indexed keyword in catalog insertion order.
func (idx *Index) Keywords() []string {
	return idx.keywords
}

// Detect runs restaurant detection against the index's own table.
func (idx *Index) Detect(text string) (string, float64) {
	return DetectRestaurant(text, idx.restaurants)
}
