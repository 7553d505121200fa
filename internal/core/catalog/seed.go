package catalog

import "pantry-scan/internal/pkg/common"

// seedRecipes 內建的菲律賓料理種子食譜
func seedRecipes() []Recipe {
	return []Recipe{
		{
			ID:          "adobo",
			Title:       "Chicken Adobo",
			Description: "Classic Filipino braise of chicken in soy sauce, vinegar and garlic.",
			Ingredients: []common.RecipeIngredient{
				{Name: "Chicken", Amount: "1 kg"},
				{Name: "Soy Sauce", Amount: "1/2 cup"},
				{Name: "Vinegar", Amount: "1/3 cup"},
				{Name: "Garlic", Amount: "6 cloves"},
				{Name: "Bay Leaves", Amount: "3 pieces"},
				{Name: "Black Pepper", Amount: "1 tsp"},
			},
			Instructions: []string{
				"Combine chicken, soy sauce and garlic and marinate for 30 minutes.",
				"Sear the chicken pieces until lightly browned.",
				"Pour in the marinade, vinegar, bay leaves and pepper.",
				"Simmer uncovered for 30 minutes until the sauce reduces.",
				"Serve hot with steamed rice.",
			},
			Tags:        []string{"filipino", "chicken", "braised"},
			Rating:      4.8,
			Likes:       320,
			Bookmarks:   145,
			Published:   true,
			PrepMinutes: 15,
			CookMinutes: 45,
			Servings:    4,
		},
		{
			ID:          "sinigang",
			Title:       "Pork Sinigang",
			Description: "Sour tamarind soup with pork and vegetables.",
			Ingredients: []common.RecipeIngredient{
				{Name: "Pork Belly", Amount: "500 g"},
				{Name: "Tamarind", Amount: "1 pack"},
				{Name: "Tomato", Amount: "2 pieces"},
				{Name: "Radish", Amount: "1 piece"},
				{Name: "Kangkong", Amount: "1 bunch"},
				{Name: "Onion", Amount: "1 piece"},
			},
			Instructions: []string{
				"Boil the pork with onion and tomato until tender.",
				"Add the tamarind base and simmer for 10 minutes.",
				"Add radish and cook until translucent.",
				"Stir in kangkong just before serving.",
			},
			Tags:        []string{"filipino", "pork", "soup"},
			Rating:      4.6,
			Likes:       280,
			Bookmarks:   120,
			Published:   true,
			PrepMinutes: 20,
			CookMinutes: 60,
			Servings:    5,
		},
		{
			ID:          "kare-kare",
			Title:       "Kare-Kare",
			Description: "Oxtail stew in thick peanut sauce.",
			Ingredients: []common.RecipeIngredient{
				{Name: "Oxtail", Amount: "1 kg"},
				{Name: "Peanut Butter", Amount: "1 cup"},
				{Name: "Eggplant", Amount: "2 pieces"},
				{Name: "String Beans", Amount: "1 bunch"},
				{Name: "Banana Blossom", Amount: "1 piece"},
				{Name: "Shrimp Paste", Amount: "3 tbsp"},
			},
			Instructions: []string{
				"Boil the oxtail until fork tender, about two hours.",
				"Stir peanut butter into the broth and simmer.",
				"Add the vegetables and cook until just soft.",
				"Serve with shrimp paste on the side.",
			},
			Tags:        []string{"filipino", "beef", "stew"},
			Rating:      4.7,
			Likes:       210,
			Bookmarks:   98,
			Published:   true,
			PrepMinutes: 25,
			CookMinutes: 150,
			Servings:    6,
		},
		{
			ID:          "lumpia",
			Title:       "Lumpiang Shanghai",
			Description: "Crispy fried spring rolls with ground pork filling.",
			Ingredients: []common.RecipeIngredient{
				{Name: "Ground Pork", Amount: "500 g"},
				{Name: "Carrot", Amount: "1 piece"},
				{Name: "Onion", Amount: "1 piece"},
				{Name: "Garlic", Amount: "4 cloves"},
				{Name: "Spring Roll Wrapper", Amount: "30 pieces"},
				{Name: "Egg", Amount: "1 piece"},
			},
			Instructions: []string{
				"Mix pork, minced carrot, onion, garlic and egg.",
				"Spoon the filling onto wrappers and roll tightly.",
				"Deep fry in batches until golden brown.",
				"Drain and serve with sweet chili sauce.",
			},
			Tags:        []string{"filipino", "pork", "fried", "appetizer"},
			Rating:      4.5,
			Likes:       390,
			Bookmarks:   201,
			Published:   true,
			PrepMinutes: 30,
			CookMinutes: 20,
			Servings:    8,
		},
		{
			ID:          "pancit",
			Title:       "Pancit Canton",
			Description: "Stir-fried egg noodles with chicken and vegetables.",
			Ingredients: []common.RecipeIngredient{
				{Name: "Egg Noodles", Amount: "400 g"},
				{Name: "Chicken Breast", Amount: "250 g"},
				{Name: "Cabbage", Amount: "1/2 head"},
				{Name: "Carrot", Amount: "1 piece"},
				{Name: "Soy Sauce", Amount: "3 tbsp"},
				{Name: "Garlic", Amount: "4 cloves"},
			},
			Instructions: []string{
				"Saute garlic and chicken until cooked through.",
				"Add carrot and cabbage and stir fry briefly.",
				"Add noodles, soy sauce and a splash of broth.",
				"Toss until the noodles absorb the liquid.",
			},
			Tags:        []string{"filipino", "noodles", "chicken"},
			Rating:      4.4,
			Likes:       175,
			Bookmarks:   80,
			Published:   true,
			PrepMinutes: 15,
			CookMinutes: 20,
			Servings:    4,
		},
		{
			ID:          "lechon-kawali",
			Title:       "Lechon Kawali",
			Description: "Twice-cooked crispy pork belly.",
			Ingredients: []common.RecipeIngredient{
				{Name: "Pork Belly", Amount: "1 kg"},
				{Name: "Bay Leaves", Amount: "3 pieces"},
				{Name: "Garlic", Amount: "5 cloves"},
				{Name: "Black Pepper", Amount: "1 tbsp"},
				{Name: "Salt", Amount: "2 tbsp"},
			},
			Instructions: []string{
				"Boil the pork belly with garlic, bay leaves, pepper and salt until tender.",
				"Air dry the pork completely, ideally overnight.",
				"Deep fry until the skin blisters and crisps.",
				"Chop and serve with liver sauce or spiced vinegar.",
			},
			Tags:        []string{"filipino", "pork", "fried"},
			Rating:      4.9,
			Likes:       450,
			Bookmarks:   260,
			Published:   true,
			PrepMinutes: 20,
			CookMinutes: 90,
			Servings:    6,
		},
		{
			ID:          "draft-tinola",
			Title:       "Chicken Tinola",
			Description: "Ginger chicken soup, draft entry.",
			Ingredients: []common.RecipeIngredient{
				{Name: "Chicken", Amount: "1 kg"},
				{Name: "Ginger", Amount: "1 thumb"},
				{Name: "Green Papaya", Amount: "1 piece"},
			},
			Instructions: []string{"Simmer everything until tender."},
			Tags:         []string{"filipino", "chicken", "soup"},
			Rating:       0,
			Published:    false,
			PrepMinutes:  10,
			CookMinutes:  40,
			Servings:     4,
		},
	}
}
