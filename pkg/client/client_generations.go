package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

type GenerationService struct {
	Options []RequestOption
}

func NewGenerationService(opts ...RequestOption) GenerationService {
	return GenerationService{
		Options: opts,
	}
}

type GenerateRequest struct {
	URL  string `json:"url"`
	Mode string `json:"mode,omitempty"`
}

type Generation struct {
	ID string `json:"id"`

	URL         string `json:"url"`
	Description string `json:"site_description"`

	LLMsText     string `json:"llms_text"`
	LLMsFullText string `json:"llms_full_text"`

	Total      int     `json:"total"`
	Successful int     `json:"successful"`
	Failed     int     `json:"failed"`
	Rate       float64 `json:"success_rate"`
}

func (r *GenerationService) New(ctx context.Context, input GenerateRequest, opts ...RequestOption) (*Generation, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	data, err := json.Marshal(input)

	if err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/v1/generate", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiError struct {
			Error string `json:"error"`
		}

		if err := json.NewDecoder(resp.Body).Decode(&apiError); err == nil && apiError.Error != "" {
			return nil, errors.New(apiError.Error)
		}

		return nil, errors.New(resp.Status)
	}

	var result Generation

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
