package catalog

import "github.com/nikolayk812/petclub-shop/internal/domain"

const fallbackCategoryLabel = "Outros"

type CategoryOption struct {
	ID   domain.Category `json:"id"`
	Name string          `json:"name"`
}

var categoryLabels = map[domain.Category]string{
	domain.CategoryFood:      "Rações",
	domain.CategoryCollar:    "Coleiras e Guias",
	domain.CategoryToy:       "Brinquedos",
	domain.CategoryBed:       "Camas e Cobertores",
	domain.CategoryAccessory: "Acessórios",
	domain.CategoryHygiene:   "Higiene e Cuidados",
	domain.CategoryFeeder:    "Comedouros e Bebedouros",
	domain.CategoryScratcher: "Arranhadores",
	domain.CategoryLitter:    "Areia e Higiene",
	domain.CategoryCage:      "Gaiolas e Poleiros",
	domain.CategoryHabitat:   "Habitat",
}

// menus override the generic label where a pet type shows a category differently.
var menus = map[domain.PetType][]CategoryOption{
	domain.PetTypeDog: {
		{ID: domain.CategoryFood, Name: "Rações"},
		{ID: domain.CategoryCollar, Name: "Coleiras e Guias"},
		{ID: domain.CategoryToy, Name: "Brinquedos"},
		{ID: domain.CategoryBed, Name: "Camas e Cobertores"},
		{ID: domain.CategoryAccessory, Name: "Acessórios"},
		{ID: domain.CategoryHygiene, Name: "Higiene e Cuidados"},
		{ID: domain.CategoryFeeder, Name: "Comedouros e Bebedouros"},
	},
	domain.PetTypeCat: {
		{ID: domain.CategoryFood, Name: "Rações"},
		{ID: domain.CategoryScratcher, Name: "Arranhadores"},
		{ID: domain.CategoryToy, Name: "Brinquedos Interativos"},
		{ID: domain.CategoryLitter, Name: "Areia e Higiene"},
		{ID: domain.CategoryAccessory, Name: "Acessórios"},
		{ID: domain.CategoryFeeder, Name: "Comedouros e Bebedouros"},
	},
	domain.PetTypeBird: {
		{ID: domain.CategoryFood, Name: "Alimentação"},
		{ID: domain.CategoryCage, Name: "Gaiolas e Poleiros"},
		{ID: domain.CategoryToy, Name: "Brinquedos"},
		{ID: domain.CategoryFeeder, Name: "Bebedouros"},
	},
	domain.PetTypeRabbit: {
		{ID: domain.CategoryFood, Name: "Rações"},
		{ID: domain.CategoryAccessory, Name: "Acessórios"},
		{ID: domain.CategoryToy, Name: "Brinquedos"},
		{ID: domain.CategoryHabitat, Name: "Habitat"},
	},
	domain.PetTypeOther: {
		{ID: domain.CategoryFood, Name: "Alimentação"},
		{ID: domain.CategoryHabitat, Name: "Habitat"},
		{ID: domain.CategoryToy, Name: "Brinquedos"},
		{ID: domain.CategoryAccessory, Name: "Acessórios"},
	},
}

// Label returns the display name of c, or a fallback for unknown categories.
func Label(c domain.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return fallbackCategoryLabel
}

// CategoriesFor returns the category menu of a pet type; unknown types get the dog menu.
func CategoriesFor(petType domain.PetType) []CategoryOption {
	menu, ok := menus[petType]
	if !ok {
		menu = menus[domain.PetTypeDog]
	}

	out := make([]CategoryOption, len(menu))
	copy(out, menu)
	return out
}
