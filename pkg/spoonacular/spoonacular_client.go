package spoonacular

import (
	"Cookshare-Backend/internal/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const baseURL = "https://api.spoonacular.com"

type (
	// RecipeCard is a search result: just enough to render a tile.
	RecipeCard struct {
		ExternalID string `json:"external_id"`
		Title      string `json:"title"`
		ImageURL   string `json:"image_url"`
	}

	// RecipeInfo is the full detail used by the import path.
	RecipeInfo struct {
		ExternalID   string
		Title        string
		ImageURL     string
		Summary      string
		Instructions string
		Tags         []string
		Ingredients  []string
	}

	Client interface {
		Enabled() bool
		Search(ctx context.Context, q string, number, offset int) ([]RecipeCard, error)
		GetRecipeInformation(ctx context.Context, externalID string) (*RecipeInfo, error)
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

func (c *client) Enabled() bool {
	return utils.GetConfig("SPOONACULAR_ENABLED") == "true" &&
		utils.GetConfig("SPOONACULAR_API_KEY") != ""
}

func (c *client) Search(ctx context.Context, q string, number, offset int) ([]RecipeCard, error) {
	if !c.Enabled() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("apiKey", utils.GetConfig("SPOONACULAR_API_KEY"))
	params.Set("query", q)
	params.Set("number", strconv.Itoa(number))
	params.Set("offset", strconv.Itoa(offset))
	params.Set("addRecipeInformation", "false")

	searchURL := baseURL + "/recipes/complexSearch?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular search error: %s", resp.Status)
	}

	var body struct {
		Results []struct {
			ID    int64  `json:"id"`
			Title string `json:"title"`
			Image string `json:"image"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	out := make([]RecipeCard, 0, len(body.Results))
	for _, r := range body.Results {
		out = append(out, RecipeCard{
			ExternalID: strconv.FormatInt(r.ID, 10),
			Title:      r.Title,
			ImageURL:   r.Image,
		})
	}
	return out, nil
}

func (c *client) GetRecipeInformation(ctx context.Context, externalID string) (*RecipeInfo, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("spoonacular disabled")
	}

	params := url.Values{}
	params.Set("apiKey", utils.GetConfig("SPOONACULAR_API_KEY"))
	params.Set("includeNutrition", "false")

	infoURL := fmt.Sprintf("%s/recipes/%s/information?%s", baseURL, url.PathEscape(externalID), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, infoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular information error: %s", resp.Status)
	}

	var body struct {
		ID           int64    `json:"id"`
		Title        string   `json:"title"`
		Image        string   `json:"image"`
		Summary      string   `json:"summary"`
		Instructions string   `json:"instructions"`
		DishTypes    []string `json:"dishTypes"`
		Cuisines     []string `json:"cuisines"`
		Extended     []struct {
			Original string `json:"original"`
		} `json:"extendedIngredients"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	info := RecipeInfo{
		ExternalID:   strconv.FormatInt(body.ID, 10),
		Title:        body.Title,
		ImageURL:     body.Image,
		Summary:      stripHTML(body.Summary),
		Instructions: stripHTML(body.Instructions),
	}
	info.Tags = append(info.Tags, body.DishTypes...)
	info.Tags = append(info.Tags, body.Cuisines...)
	for _, ing := range body.Extended {
		if strings.TrimSpace(ing.Original) != "" {
			info.Ingredients = append(info.Ingredients, ing.Original)
		}
	}
	return &info, nil
}

var htmlTagPattern = regexp.MustCompile("<[^>]*>")

func stripHTML(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}
