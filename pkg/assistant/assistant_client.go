package assistant

import (
	"Cookshare-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const responsesURL = "https://api.openai.com/v1/responses"

type (
	Client interface {
		Enabled() bool
		Respond(ctx context.Context, instructions, input string) (string, error)
	}

	client struct {
		httpClient *http.Client
	}
)

func NewClient() Client {
	return &client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *client) Enabled() bool {
	return utils.GetConfig("OPENAI_ENABLED") == "true" &&
		utils.GetConfig("OPENAI_API_KEY") != ""
}

func (c *client) Respond(ctx context.Context, instructions, input string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"model":        utils.GetConfig("OPENAI_MODEL"),
		"instructions": instructions,
		"input":        input,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, responsesURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+utils.GetConfig("OPENAI_API_KEY"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant api error: %s", resp.Status)
	}

	var body struct {
		Output []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, out := range body.Output {
		for _, content := range out.Content {
			if content.Type == "output_text" {
				sb.WriteString(content.Text)
			}
		}
	}

	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", fmt.Errorf("assistant api returned empty output")
	}
	return reply, nil
}
