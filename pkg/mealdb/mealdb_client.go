package mealdb

import (
	"Cookshare-Backend/internal/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type (
	// Meal mirrors the flattened TheMealDB payload with the twenty
	// ingredient/measure column pairs already folded into lines.
	Meal struct {
		ExternalID      string
		Title           string
		ImageURL        string
		Instructions    string
		Category        string
		Area            string
		TagsCSV         string
		IngredientLines []string
	}

	Client interface {
		SearchByLetter(ctx context.Context, letter rune) ([]Meal, error)
		Random(ctx context.Context) (*Meal, error)
	}

	client struct {
		httpClient *http.Client
	}
)

func NewClient() Client {
	return &client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *client) SearchByLetter(ctx context.Context, letter rune) ([]Meal, error) {
	endpoint := fmt.Sprintf("%s/search.php?f=%s", utils.GetConfig("MEALDB_BASE_URL"), url.QueryEscape(string(letter)))
	return c.fetchMeals(ctx, endpoint)
}

func (c *client) Random(ctx context.Context) (*Meal, error) {
	meals, err := c.fetchMeals(ctx, utils.GetConfig("MEALDB_BASE_URL")+"/random.php")
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, fmt.Errorf("mealdb random returned no meal")
	}
	return &meals[0], nil
}

func (c *client) fetchMeals(ctx context.Context, endpoint string) ([]Meal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mealdb error: %s", resp.Status)
	}

	var body struct {
		Meals []map[string]any `json:"meals"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	meals := make([]Meal, 0, len(body.Meals))
	for _, raw := range body.Meals {
		if raw == nil {
			continue
		}
		meals = append(meals, mealFromRaw(raw))
	}
	return meals, nil
}

func mealFromRaw(raw map[string]any) Meal {
	field := func(key string) string {
		v, _ := raw[key].(string)
		return strings.TrimSpace(v)
	}

	meal := Meal{
		ExternalID:   field("idMeal"),
		Title:        field("strMeal"),
		ImageURL:     field("strMealThumb"),
		Instructions: field("strInstructions"),
		Category:     field("strCategory"),
		Area:         field("strArea"),
		TagsCSV:      field("strTags"),
	}

	for i := 1; i <= 20; i++ {
		ingredient := field(fmt.Sprintf("strIngredient%d", i))
		if ingredient == "" {
			continue
		}
		measure := field(fmt.Sprintf("strMeasure%d", i))
		line := strings.TrimSpace(measure + " " + ingredient)
		meal.IngredientLines = append(meal.IngredientLines, "• "+line)
	}
	return meal
}

// Tags merges category, area, and the provider's own comma tags into
// one list without duplicates.
func (m *Meal) Tags() []string {
	seen := map[string]bool{}
	var tags []string
	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[strings.ToLower(tag)] {
			return
		}
		seen[strings.ToLower(tag)] = true
		tags = append(tags, tag)
	}

	add(m.Category)
	add(m.Area)
	for _, tag := range strings.Split(m.TagsCSV, ",") {
		add(tag)
	}
	return tags
}
