package seed

import (
	"Cookshare-Backend/entities"
	"Cookshare-Backend/pkg/mealdb"
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bootstrapTarget = 60

type curatedRecipe struct {
	title       string
	ingredients string
	steps       string
	tags        string
}

var curated = []curatedRecipe{
	{
		title:       "Classic Tomato Pasta",
		ingredients: "• 400 g spaghetti\n• 2 tbsp olive oil\n• 3 cloves garlic\n• 800 g canned tomatoes\n• Fresh basil\n• Salt and pepper",
		steps:       "Cook the spaghetti in salted water. Soften the garlic in olive oil, add the tomatoes, and simmer for 15 minutes. Toss the pasta through the sauce and finish with basil.",
		tags:        "Pasta, Italian, Vegetarian",
	},
	{
		title:       "Chicken Fried Rice",
		ingredients: "• 2 cups cooked rice\n• 200 g chicken breast\n• 2 eggs\n• 1 cup mixed vegetables\n• 2 tbsp soy sauce\n• 2 spring onions",
		steps:       "Dice and fry the chicken until cooked through. Scramble the eggs, then stir in the rice, vegetables, and soy sauce over high heat. Top with spring onion.",
		tags:        "Rice, Asian, Quick",
	},
	{
		title:       "Vegetable Soup",
		ingredients: "• 1 onion\n• 2 carrots\n• 2 stalks celery\n• 1 potato\n• 1 l vegetable stock\n• 1 bay leaf",
		steps:       "Sweat the onion, carrot, and celery. Add the potato, stock, and bay leaf, then simmer until tender. Season and serve.",
		tags:        "Soup, Vegetarian, Comfort",
	},
}

// Seed makes sure a fresh database has something to show: a system
// user owning a few curated recipes, plus a provider import when the
// public pool is nearly empty.
func Seed(db *gorm.DB, mealdbImport mealdb.ImportService) error {
	systemUser, err := ensureSystemUser(db)
	if err != nil {
		return err
	}

	for _, c := range curated {
		var count int64
		if err := db.Model(&entities.Recipe{}).
			Where("title = ? AND source = ?", c.title, entities.RecipeSourceCurated).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		row := entities.Recipe{
			UserID:      &systemUser.ID,
			Title:       c.title,
			Ingredients: c.ingredients,
			Steps:       c.steps,
			IsPublic:    true,
			Source:      entities.RecipeSourceCurated,
			Tags:        c.tags,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}

	var publicCount int64
	if err := db.Model(&entities.Recipe{}).Where("is_public = ?", true).Count(&publicCount).Error; err != nil {
		return err
	}
	if publicCount < 20 {
		res, err := mealdbImport.ImportMeals(context.Background(), bootstrapTarget)
		if err != nil {
			fmt.Printf("Seed import skipped: %v\n", err)
		} else {
			fmt.Printf("Seed imported %d recipes from %s\n", res.Saved, res.Source)
		}
	}

	fmt.Println("Database seeding complete")
	return nil
}

func ensureSystemUser(db *gorm.DB) (*entities.User, error) {
	var existing entities.User
	err := db.Where("email = ?", "curated@cookshare.local").First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("not-a-login-account"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	systemUser := entities.User{
		Username: "CookShare",
		Email:    "curated@cookshare.local",
		Password: string(hashed),
	}
	if err := db.Create(&systemUser).Error; err != nil {
		return nil, err
	}
	return &systemUser, nil
}
