package taxonomy

// Default returns the registry the site ships with. The tables are authored
// here rather than loaded from disk so a missing data file can never leave
// navigation empty.
func Default() *Registry {
	categories := []Category{
		{
			Key:  "kladdkaka",
			Name: "Kladdkaka",
			Slug: "kladdkaka",
			Description: "Kladdiga chokladkakor i alla varianter, från klassisk " +
				"kladdkaka till vit kladdkaka och veganska alternativ.",
			Icon:          "cake",
			Color:         "#7b3f00",
			Image:         "/images/kategorier/kladdkaka.jpg",
			Subcategories: []string{"Klassisk", "Vit kladdkaka", "Vegansk", "Glutenfri"},
		},
		{
			Key:           "pasta",
			Name:          "Pasta",
			Slug:          "pasta",
			Description:   "Pastarätter för vardag och helg.",
			Icon:          "noodles",
			Color:         "#d9a441",
			Image:         "/images/kategorier/pasta.jpg",
			Subcategories: []string{"Krämig pasta", "Pasta med kött", "Vegetarisk pasta"},
		},
		{
			Key:           "kyckling",
			Name:          "Kyckling",
			Slug:          "kyckling",
			Description:   "Kycklingrecept från hela världen.",
			Icon:          "drumstick",
			Color:         "#c0533e",
			Image:         "/images/kategorier/kyckling.jpg",
			Subcategories: []string{"I ugn", "Grytor", "Sallader"},
		},
		{
			Key:           "fisk",
			Name:          "Fisk & skaldjur",
			Slug:          "fisk",
			Description:   "Lax, torsk, räkor och annat gott från havet.",
			Icon:          "fish",
			Color:         "#3e7cc0",
			Image:         "/images/kategorier/fisk.jpg",
			Subcategories: []string{"Lax", "Torsk", "Skaldjur"},
		},
		{
			Key:           "vegetariskt",
			Name:          "Vegetariskt",
			Slug:          "vegetariskt",
			Description:   "Gröna rätter utan kött och fisk.",
			Icon:          "leaf",
			Color:         "#4e9a51",
			Image:         "/images/kategorier/vegetariskt.jpg",
			Subcategories: []string{"Veganskt", "Sallader", "Grytor"},
		},
		{
			Key:           "efterratter",
			Name:          "Efterrätter",
			Slug:          "efterratter",
			Description:   "Söta avslut på middagen.",
			Icon:          "ice-cream",
			Color:         "#b05c8f",
			Image:         "/images/kategorier/efterratter.jpg",
			Subcategories: []string{"Pajer", "Glass", "Bakverk"},
		},
		{
			Key:           "soppor",
			Name:          "Soppor",
			Slug:          "soppor",
			Description:   "Värmande soppor året om.",
			Icon:          "bowl",
			Color:         "#c08a3e",
			Image:         "/images/kategorier/soppor.jpg",
			Subcategories: []string{"Krämiga", "Buljongbaserade", "Kalla soppor"},
		},
	}

	mealTypes := []Term{
		{Slug: "frukost", Name: "Frukost"},
		{Slug: "lunch", Name: "Lunch"},
		{Slug: "middag", Name: "Middag"},
		{Slug: "mellanmal", Name: "Mellanmål"},
		{Slug: "fika", Name: "Fika"},
	}

	cookingMethods := []Term{
		{Slug: "ugn", Name: "I ugn"},
		{Slug: "stekpanna", Name: "Stekpanna"},
		{Slug: "gryta", Name: "Gryta"},
		{Slug: "grill", Name: "Grill"},
		{Slug: "airfryer", Name: "Airfryer"},
		{Slug: "utan-tillagning", Name: "Utan tillagning"},
	}

	dietaryTags := []Term{
		{Slug: "vegetariskt", Name: "Vegetariskt"},
		{Slug: "veganskt", Name: "Veganskt"},
		{Slug: "glutenfritt", Name: "Glutenfritt"},
		{Slug: "laktosfritt", Name: "Laktosfritt"},
	}

	lifestyleTags := []Term{
		{Slug: "vardagsmat", Name: "Vardagsmat"},
		{Slug: "helgmat", Name: "Helgmat"},
		{Slug: "budget", Name: "Budget"},
		{Slug: "matlador", Name: "Matlådor"},
		{Slug: "barnvanligt", Name: "Barnvänligt"},
	}

	difficulties := []Term{
		{Slug: "latt", Name: "Lätt"},
		{Slug: "medel", Name: "Medel"},
		{Slug: "avancerad", Name: "Avancerad"},
	}

	timeBuckets := []TimeBucket{
		{Slug: "snabb", Name: "Under 30 min", MaxMinutes: 30},
		{Slug: "medel", Name: "30–60 min", MaxMinutes: 60},
		{Slug: "lång", Name: "1–2 timmar", MaxMinutes: 120},
		{Slug: "mycket-lång", Name: "Över 2 timmar", MaxMinutes: 999},
	}

	return New(categories, mealTypes, cookingMethods, dietaryTags, lifestyleTags, difficulties, timeBuckets)
}
