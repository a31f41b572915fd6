package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
)

// Fetcher loads the raw card list of one set from an external source.
type Fetcher interface {
	FetchSet(ctx context.Context, setID string) ([]domain.Card, error)
}

// apiCard mirrors the fields of the Pokemon TCG API card object we use.
type apiCard struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Supertype string   `json:"supertype"`
	Subtypes  []string `json:"subtypes"`
	Rarity    string   `json:"rarity"`
	Types     []string `json:"types"`
	Set       struct {
		ID string `json:"id"`
	} `json:"set"`
	Images struct {
		Small string `json:"small"`
		Large string `json:"large"`
	} `json:"images"`
}

type apiPage struct {
	Data       []apiCard `json:"data"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Count      int       `json:"count"`
	TotalCount int       `json:"totalCount"`
}

// HTTPFetcher reads cards from the Pokemon TCG REST API. Every page is a single
// attempt bounded by the timeout; failures are returned, never retried.
type HTTPFetcher struct {
	baseURL string
	apiKey  string
	client  *http.Client
	timeout time.Duration
}

// NewHTTPFetcher creates a fetcher for baseURL (e.g. DefaultAPIURL).
func NewHTTPFetcher(baseURL, apiKey string, timeout time.Duration) *HTTPFetcher {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{},
		timeout: timeout,
	}
}

// FetchSet pages through GET {base}/cards?q=set.id:{setID}.
func (f *HTTPFetcher) FetchSet(ctx context.Context, setID string) ([]domain.Card, error) {
	if strings.TrimSpace(setID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgSetIDRequired)
	}

	var cards []domain.Card
	for page := 1; page <= maxUpstreamPages; page++ {
		body, err := f.fetchPage(ctx, setID, page)
		if err != nil {
			return nil, err
		}
		for _, c := range body.Data {
			cards = append(cards, fromAPICard(c, setID))
		}
		if len(body.Data) == 0 || len(cards) >= body.TotalCount {
			break
		}
	}
	return cards, nil
}

func (f *HTTPFetcher) fetchPage(ctx context.Context, setID string, page int) (*apiPage, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("q", fmt.Sprintf(upstreamQueryPattern, setID))
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(DefaultPageSize))
	endpoint := f.baseURL + "/cards?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if f.apiKey != "" {
		req.Header.Set("X-Api-Key", f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s: %s %d", ErrMsgFetchFailed, ErrMsgUpstreamStatus, resp.StatusCode)
	}

	var body apiPage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
	}
	return &body, nil
}

// fromAPICard converts an upstream card, resolving category, holo flag and
// default price once at ingestion.
func fromAPICard(c apiCard, setID string) domain.Card {
	rarity, holo := parseUpstreamRarity(c.Rarity)

	if c.Set.ID != "" {
		setID = c.Set.ID
	}
	image := c.Images.Large
	if image == "" {
		image = c.Images.Small
	}

	card := domain.Card{
		ID:        c.ID,
		Name:      c.Name,
		SetID:     setID,
		Supertype: c.Supertype,
		Rarity:    rarity,
		Holo:      holo,
		Types:     c.Types,
		ImageURL:  image,
	}
	card.Category = domain.ResolveCategory(card.Name, card.Supertype, card.Rarity)
	card.Price = domain.DefaultPriceForTier(card.Tier())
	return card
}

// parseUpstreamRarity maps upstream rarity strings such as "Rare Holo" onto
// the base rarity plus the holo flag.
func parseUpstreamRarity(raw string) (domain.Rarity, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	holo := strings.Contains(lower, upstreamHoloMarker)

	switch {
	case lower == "":
		return domain.RarityNone, false
	case lower == "common":
		return domain.RarityCommon, holo
	case lower == "uncommon":
		return domain.RarityUncommon, holo
	case strings.HasPrefix(lower, "rare"):
		return domain.RarityRare, holo
	default:
		return domain.Rarity(raw), holo
	}
}
