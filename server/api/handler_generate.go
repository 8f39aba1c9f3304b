package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adrianliechti/llmstxt/pkg/crawler"
	"github.com/adrianliechti/llmstxt/pkg/document"
	"github.com/adrianliechti/llmstxt/pkg/fetch"

	"github.com/yuin/goldmark"
)

type generateRequest struct {
	URL  string `json:"url"`
	Mode string `json:"mode"`
}

type generateResponse struct {
	ID string `json:"id"`

	URL         string `json:"url"`
	Description string `json:"site_description"`

	LLMsText     string `json:"llms_text,omitempty"`
	LLMsFullText string `json:"llms_full_text,omitempty"`

	LLMsHTML string `json:"llms_html,omitempty"`

	Total      int     `json:"total"`
	Successful int     `json:"successful"`
	Failed     int     `json:"failed"`
	Rate       float64 `json:"success_rate"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if req.URL == "" {
		writeError(w, http.StatusBadRequest, errors.New("website url is required"))
		return
	}

	mode := crawler.ModeDigest

	switch req.Mode {
	case "", "digest":

	case "full":
		mode = crawler.ModeFull

	case "both":
		mode = crawler.ModeBoth

	default:
		writeError(w, http.StatusBadRequest, errors.New("invalid mode: "+req.Mode))
		return
	}

	result, err := h.Crawler().Run(r.Context(), req.URL, &crawler.RunOptions{
		Mode: mode,
	})

	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}

	resp := generateResponse{
		ID: result.ID,

		URL:         result.URL,
		Description: result.Description,

		Total:      result.Total(),
		Successful: result.Successful(),
		Failed:     result.Failed(),
		Rate:       result.SuccessRate(),
	}

	if mode == crawler.ModeDigest || mode == crawler.ModeBoth {
		resp.LLMsText = document.Digest(result)

		if r.URL.Query().Get("format") == "html" {
			var buf bytes.Buffer

			if err := goldmark.Convert([]byte(resp.LLMsText), &buf); err == nil {
				resp.LLMsHTML = buf.String()
			}
		}
	}

	if mode == crawler.ModeFull || mode == crawler.ModeBoth {
		resp.LLMsFullText = document.FullDump(result)
	}

	writeJson(w, resp)
}

func errorStatus(err error) int {
	if errors.Is(err, crawler.ErrInvalidURL) {
		return http.StatusBadRequest
	}

	if errors.Is(err, crawler.ErrDisallowed) {
		return http.StatusForbidden
	}

	var fetchErr *fetch.Error

	if errors.As(err, &fetchErr) {
		switch fetchErr.Kind {
		case fetch.KindTimeout:
			return http.StatusGatewayTimeout

		case fetch.KindConnection:
			return http.StatusBadGateway

		case fetch.KindHTTP:
			return http.StatusBadGateway
		}
	}

	return http.StatusInternalServerError
}
