package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/moyeobab/moyeobab-backend/internal/place"
	"github.com/moyeobab/moyeobab-backend/internal/platform/config"
)

const (
	defaultBaseURL = "https://dapi.kakao.com"
	searchPath     = "/v2/local/search/keyword.json"

	// categoryFood 는 카카오 로컬의 음식점 카테고리 그룹 코드입니다
	categoryFood = "FD6"

	// maxPageSize 는 카카오 로컬 API의 페이지 크기 상한입니다
	maxPageSize = 15
)

// Client 는 카카오 로컬 키워드 검색 API 클라이언트입니다.
// place.SearchProvider 포트를 구현합니다
type Client struct {
	baseURL    string
	restAPIKey string
	httpClient *http.Client
}

// NewClient 는 설정으로부터 카카오 클라이언트를 만듭니다.
// 질의 한 건의 타임아웃은 여기서 관리합니다
func NewClient(cfg config.KakaoConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		restAPIKey: cfg.RestAPIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// document 는 카카오 로컬 응답의 장소 한 건입니다
type document struct {
	ID              string `json:"id"`
	PlaceName       string `json:"place_name"`
	CategoryName    string `json:"category_name"`
	Phone           string `json:"phone"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	X               string `json:"x"` // 경도
	Y               string `json:"y"` // 위도
	PlaceURL        string `json:"place_url"`
	Distance        string `json:"distance"`
}

type searchResponse struct {
	Documents []document `json:"documents"`
}

// TextSearch 는 키워드로 음식점을 검색합니다
func (c *Client) TextSearch(ctx context.Context, query string, maxResults int) ([]place.ProviderPlace, error) {
	size := maxResults
	if size <= 0 || size > maxPageSize {
		size = maxPageSize
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("category_group_code", categoryFood)
	params.Set("size", strconv.Itoa(size))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("카카오 요청 생성 실패: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.restAPIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("카카오 호출 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("카카오 응답 오류: status=%d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("카카오 응답 해석 실패: %w", err)
	}

	places := make([]place.ProviderPlace, 0, len(body.Documents))
	for _, d := range body.Documents {
		address := d.RoadAddressName
		if address == "" {
			address = d.AddressName
		}
		lng, _ := strconv.ParseFloat(d.X, 64)
		lat, _ := strconv.ParseFloat(d.Y, 64)
		distance, _ := strconv.Atoi(d.Distance)

		places = append(places, place.ProviderPlace{
			ID:       d.ID,
			Name:     d.PlaceName,
			Address:  address,
			Category: d.CategoryName,
			Phone:    d.Phone,
			PlaceURL: d.PlaceURL,
			Lat:      lat,
			Lng:      lng,
			Distance: distance,
		})
	}
	return places, nil
}
