package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shaanzeeeee/rate-punk/config"
	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/log"

	"go.uber.org/zap"
)

// ErrRawgKeyMissing means the catalog search credential is not configured.
var ErrRawgKeyMissing = errors.New("RAWG API key not configured")

const searchPageSize = 12

// CatalogGame is a search candidate from the external catalog, shaped for the
// import endpoint.
type CatalogGame struct {
	RawgID      int      `json:"rawg_id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	CoverURL    string   `json:"cover_url"`
	Genre       *string  `json:"genre"`
	ReleaseDate string   `json:"release_date"`
	Rating      float64  `json:"rating"`
	Platforms   []string `json:"platforms"`
	Tags        []string `json:"tags"`
}

type rawgResp struct {
	Count   int `json:"count"`
	Results []struct {
		ID             int     `json:"id"`
		Name           string  `json:"name"`
		Slug           string  `json:"slug"`
		DescriptionRaw string  `json:"description_raw"`
		BackgroundImg  string  `json:"background_image"`
		Released       string  `json:"released"`
		Rating         float64 `json:"rating"`
		Genres         []struct {
			Name string `json:"name"`
		} `json:"genres"`
		Platforms []struct {
			Platform struct {
				Name string `json:"name"`
			} `json:"platform"`
		} `json:"platforms"`
		Tags []struct {
			Name string `json:"name"`
		} `json:"tags"`
	} `json:"results"`
}

type searchResult struct {
	Games []CatalogGame `json:"games"`
	Count int           `json:"count"`
}

// SearchCatalog queries the RAWG catalog for candidate games. Concurrent
// identical queries are collapsed through the singleflight group and results
// are cached in redis for an hour.
func SearchCatalog(ctx context.Context, query string) ([]CatalogGame, int, error) {
	if config.AppConfig == nil || config.AppConfig.Rawg.APIKey == "" {
		return nil, 0, ErrRawgKeyMissing
	}

	cacheKey := fmt.Sprintf(config.RedisSearchKey, query)
	if global.RedisDB != nil {
		if raw, err := global.RedisDB.Get(cacheKey).Bytes(); err == nil {
			var cached searchResult
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached.Games, cached.Count, nil
			}
		}
	}

	v, err, _ := global.FetchGroup.Do("rawg:"+query, func() (interface{}, error) {
		return fetchCatalog(ctx, query)
	})
	if err != nil {
		return nil, 0, err
	}
	result := v.(searchResult)

	if global.RedisDB != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := global.RedisDB.Set(cacheKey, raw, config.SearchTTL).Err(); err != nil {
				log.L().Warn("search cache write failed", zap.Error(err))
			}
		}
	}
	return result.Games, result.Count, nil
}

func fetchCatalog(ctx context.Context, query string) (searchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, global.FetchTimeout)
	defer cancel()

	u := fmt.Sprintf("%s/games?key=%s&search=%s&page_size=%d",
		config.AppConfig.Rawg.BaseURL,
		url.QueryEscape(config.AppConfig.Rawg.APIKey),
		url.QueryEscape(query),
		searchPageSize,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return searchResult{}, err
	}
	req.Header.Set("User-Agent", "RatePunk/"+config.Version)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return searchResult{}, fmt.Errorf("catalog fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return searchResult{}, fmt.Errorf("catalog upstream %d", resp.StatusCode)
	}

	var body rawgResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return searchResult{}, fmt.Errorf("catalog decode failed: %w", err)
	}

	games := make([]CatalogGame, 0, len(body.Results))
	for _, g := range body.Results {
		cg := CatalogGame{
			RawgID:      g.ID,
			Title:       g.Name,
			Slug:        g.Slug,
			Description: g.DescriptionRaw,
			CoverURL:    g.BackgroundImg,
			ReleaseDate: g.Released,
			Rating:      g.Rating,
		}
		if len(g.Genres) > 0 {
			genre := g.Genres[0].Name
			cg.Genre = &genre
		}
		for _, p := range g.Platforms {
			cg.Platforms = append(cg.Platforms, p.Platform.Name)
		}
		for i, t := range g.Tags {
			if i == 5 {
				break
			}
			cg.Tags = append(cg.Tags, t.Name)
		}
		games = append(games, cg)
	}
	return searchResult{Games: games, Count: body.Count}, nil
}
